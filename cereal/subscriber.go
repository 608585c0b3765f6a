package cereal

import (
	"encoding/json"

	"github.com/pfeiferj/gomsgq"
	"github.com/pkg/errors"

	"pfeifer.dev/refmatch/utils"
)

type Subscriber[T any] struct {
	Sub gomsgq.MsgqSubscriber
}

func (s *Subscriber[T]) Read() (obj T, success bool) {
	data := s.Sub.Read()
	if len(data) == 0 {
		return obj, false
	}
	obj, err := Decode[T](data)
	if err != nil {
		return obj, false
	}
	return obj, true
}

func Decode[T any](data []byte) (obj T, err error) {
	err = json.Unmarshal(data, &obj)
	return obj, errors.Wrap(err, "could not decode message")
}

func (s *Subscriber[T]) Close() {
	err, err2 := s.Sub.Msgq.Close()
	logCloseErrors(err, err2)
}

func logCloseErrors(err, err2 error) {
	utils.Loge(errors.Wrap(err, "could not close msgq"))
	utils.Loge(errors.Wrap(err2, "could not close msgq"))
}

func NewSubscriber[T any](name string, conflate bool) (subscriber Subscriber[T]) {
	msgq := gomsgq.Msgq{}
	err := msgq.Init(name, DEFAULT_SEGMENT_SIZE)
	if err != nil {
		panic(errors.Wrapf(err, "could not init msgq %s", name))
	}
	sub := gomsgq.MsgqSubscriber{}
	sub.Conflate = conflate
	sub.Init(msgq)

	subscriber.Sub = sub
	return subscriber
}
