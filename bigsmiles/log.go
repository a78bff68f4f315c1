package bigsmiles

import "github.com/tliron/commonlog"

var log = commonlog.GetLogger("bigsmiles")
