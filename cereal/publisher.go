package cereal

import (
	"encoding/json"

	"github.com/pfeiferj/gomsgq"
	"github.com/pkg/errors"
)

type Publisher[T any] struct {
	Pub gomsgq.MsgqPublisher
}

func (p *Publisher[T]) Send(obj T) error {
	b, err := Encode(obj)
	if err != nil {
		return err
	}
	p.Pub.Send(b)
	return nil
}

func Encode[T any](obj T) ([]byte, error) {
	b, err := json.Marshal(obj)
	return b, errors.Wrap(err, "could not encode message")
}

func NewPublisher[T any](name string) (publisher Publisher[T]) {
	msgq := gomsgq.Msgq{}
	err := msgq.Init(name, DEFAULT_SEGMENT_SIZE)
	if err != nil {
		panic(errors.Wrapf(err, "could not init msgq %s", name))
	}
	pub := gomsgq.MsgqPublisher{}
	pub.Init(msgq)

	publisher.Pub = pub
	return publisher
}
