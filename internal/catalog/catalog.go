package catalog

import "github.com/sirupsen/logrus"

type CatalogLogHook struct{}

func (h *CatalogLogHook) Fire(entry *logrus.Entry) error {
	entry.Message = "Catalog: " + entry.Message
	return nil
}

func (h *CatalogLogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
