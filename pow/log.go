package pow

import (
	"github.com/joulecoin/jouled/infrastructure/logger"
)

var log, _ = logger.Get(logger.SubsystemTags.POW)
