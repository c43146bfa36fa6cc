package consumer

import (
	"context"
	"errors"
	"testing"
	"time"

	auditerrors "go-fichaje/internal/audit/errors"
	"go-fichaje/internal/audit/mock"
	"go-fichaje/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeReader struct {
	msgs       []kafkago.Message
	committed  []kafkago.Message
	commitErrs []error
	cancel     context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	if len(r.commitErrs) > 0 {
		err := r.commitErrs[0]
		r.commitErrs = r.commitErrs[1:]
		if err != nil {
			return err
		}
	}
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) offsets() []int64 {
	out := make([]int64, 0, len(r.committed))
	for _, m := range r.committed {
		out = append(out, m.Offset)
	}
	return out
}

func fastRetries(t *testing.T) {
	t.Helper()
	prevBase, prevMax := retryBackoff, maxRetryBackoff
	retryBackoff, maxRetryBackoff = time.Millisecond, 4*time.Millisecond
	t.Cleanup(func() { retryBackoff, maxRetryBackoff = prevBase, prevMax })
}

func TestConsumeFichajeLifecycle(t *testing.T) {
	fastRetries(t)

	ev := events.FichajeEvent{EventID: "e1", EventType: events.FichajeCheckedIn, EmployeeID: "EMP-1"}

	t.Run("commits, skips and retries in order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mock.NewMockService(ctrl)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		reader := &fakeReader{
			cancel: cancel,
			msgs: []kafkago.Message{
				{Offset: 1, Value: []byte("ok")},
				{Offset: 2, Value: []byte("dup")},
				{Offset: 3, Value: []byte("bad")},
				{Offset: 4, Value: []byte("db-down")},
				{Offset: 5, Value: []byte("after")},
			},
		}

		gomock.InOrder(
			svc.EXPECT().Record(gomock.Any(), []byte("ok")).Return(ev, nil),
			svc.EXPECT().Record(gomock.Any(), []byte("dup")).Return(ev, auditerrors.ErrEventAlreadyRecorded),
			svc.EXPECT().Record(gomock.Any(), []byte("bad")).Return(events.FichajeEvent{}, auditerrors.ErrInvalidEvent),
			svc.EXPECT().Record(gomock.Any(), []byte("db-down")).Return(ev, errors.New("connection refused")).Times(2),
			svc.EXPECT().Record(gomock.Any(), []byte("db-down")).Return(ev, nil),
			svc.EXPECT().Record(gomock.Any(), []byte("after")).Return(ev, nil),
		)

		ConsumeFichajeLifecycle(ctx, reader, svc, zap.NewNop())

		assert.Equal(t, []int64{1, 2, 3, 4, 5}, reader.offsets())
	})

	t.Run("failed commit is retried before moving on", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mock.NewMockService(ctrl)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		reader := &fakeReader{
			cancel:     cancel,
			commitErrs: []error{errors.New("group rebalancing")},
			msgs: []kafkago.Message{
				{Offset: 1, Value: []byte("ok")},
				{Offset: 2, Value: []byte("next")},
			},
		}

		gomock.InOrder(
			svc.EXPECT().Record(gomock.Any(), []byte("ok")).Return(ev, nil),
			svc.EXPECT().Record(gomock.Any(), []byte("ok")).Return(ev, auditerrors.ErrEventAlreadyRecorded),
			svc.EXPECT().Record(gomock.Any(), []byte("next")).Return(ev, nil),
		)

		ConsumeFichajeLifecycle(ctx, reader, svc, zap.NewNop())

		assert.Equal(t, []int64{1, 2}, reader.offsets())
	})

	t.Run("cancel while retrying leaves the offset uncommitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mock.NewMockService(ctrl)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		reader := &fakeReader{
			cancel: cancel,
			msgs: []kafkago.Message{
				{Offset: 7, Value: []byte("db-down")},
				{Offset: 8, Value: []byte("never")},
			},
		}

		attempts := 0
		svc.EXPECT().Record(gomock.Any(), []byte("db-down")).
			DoAndReturn(func(context.Context, []byte) (events.FichajeEvent, error) {
				attempts++
				if attempts == 3 {
					cancel()
				}
				return ev, errors.New("connection refused")
			}).Times(3)

		ConsumeFichajeLifecycle(ctx, reader, svc, zap.NewNop())

		assert.Empty(t, reader.committed)
		assert.Len(t, reader.msgs, 1)
	})
}
