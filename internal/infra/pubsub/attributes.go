package pubsub

import (
	"encoding/json"
	"strconv"

	"loyalty/internal/domain/service"

	"github.com/pkg/errors"
)

// encodeLedgerEvent serialises the event and derives the message attributes
// every provider attaches for routing and tracing.
func encodeLedgerEvent(event *service.LedgerEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to encode ledger event")
	}

	attributes := map[string]string{
		"event_id": event.ID,
		"kind":     event.Kind,
	}
	if event.TransactionID != 0 {
		attributes["transaction_id"] = strconv.FormatInt(event.TransactionID, 10)
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return data, attributes, nil
}

// orderingKey keeps the events of one account in order on providers that
// partition by key. Events without users are unordered.
func orderingKey(event *service.LedgerEvent) string {
	if len(event.UserIDs) == 0 {
		return ""
	}

	return strconv.FormatInt(event.UserIDs[0], 10)
}
