package geo

import "github.com/sirupsen/logrus"

type GeoLogHook struct{}

func (h *GeoLogHook) Fire(entry *logrus.Entry) error {
	entry.Message = "Geo: " + entry.Message
	return nil
}

func (h *GeoLogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

type GeocoderLogHook struct{}

func (h *GeocoderLogHook) Fire(entry *logrus.Entry) error {
	entry.Message = "Geocoder: " + entry.Message
	return nil
}

func (h *GeocoderLogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
