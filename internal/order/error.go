package order

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mserebryaakov/foodcart-service/pkg/apperror"
)

var (
	errOrderNotFound = errors.New("order not found")
)

func validationError(format string, args ...interface{}) error {
	return apperror.NewError(apperror.ValidationAppError, fmt.Sprintf(format, args...), http.StatusBadRequest, nil)
}
