package journey

import "github.com/sirupsen/logrus"

var log = logrus.WithField("module", "journey")
