package metrics

import (
	"time"

	"workplanner/internal/handlers/apierr"
)

const internalCode = "INTERNAL"

// ObserveOp пишет операцию с кодом ошибки API вместо текста ошибки:
// текст драйвера несет значения из запроса и в лейбл не годится
func ObserveOp(op string, start time.Time, err error) {
	operations.WithLabelValues(op, errorCode(err)).Inc()
	operationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func errorCode(err error) string {
	if err == nil {
		return ""
	}

	if _, apiErr, ok := apierr.Map(err); ok {
		return apiErr.Code
	}

	return internalCode
}

// SetUsers выставляет счетчик по данным из базы, на старте процесса
func SetUsers(n int64) {
	users.Set(float64(n))
}

func AddUsers(delta int) {
	users.Add(float64(delta))
}
