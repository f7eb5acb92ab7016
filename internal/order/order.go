package order

import "github.com/sirupsen/logrus"

type Status string

const (
	StatusUnprocessed Status = "Unprocessed"
	StatusInProgress  Status = "InProgress"
	StatusCompleted   Status = "Completed"
)

// activeStatuses are the statuses shown to managers.
var activeStatuses = []Status{StatusUnprocessed, StatusInProgress}

type PaymentOption string

const (
	PaymentOnline  PaymentOption = "Online"
	PaymentCash    PaymentOption = "Cash"
	PaymentUnknown PaymentOption = "Unknown"
)

type OrderLogHook struct{}

func (h *OrderLogHook) Fire(entry *logrus.Entry) error {
	entry.Message = "Order: " + entry.Message
	return nil
}

func (h *OrderLogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
