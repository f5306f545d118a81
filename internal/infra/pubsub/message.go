package pubsub

import (
	"encoding/json"

	"blog/internal/domain/constants"
	"blog/internal/domain/service"

	"github.com/pkg/errors"
)

// eventMessage is an account event ready for the wire. Both publishers send
// the same payload and attributes so a consumer can switch between them.
type eventMessage struct {
	data       []byte
	attributes map[string]string
	// orderingKey keeps the events of one account in publish order.
	orderingKey string
}

func encodeEvent(event *service.AccountEvent) (*eventMessage, error) {
	if event == nil {
		return nil, errors.New("nil account event")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode account event")
	}

	attributes := map[string]string{
		constants.EventAttrType:   string(event.Type),
		constants.EventAttrUserID: event.UserID,
	}
	if event.RequestID != "" {
		attributes[constants.EventAttrRequestID] = event.RequestID
	}

	return &eventMessage{
		data:        data,
		attributes:  attributes,
		orderingKey: event.UserID,
	}, nil
}
