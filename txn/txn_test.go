/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package txn

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/reply"
	"dirpx.dev/reply/msg"
)

// session records what happened inside one transaction.
type session struct {
	log []string
}

type fakeExecutor struct {
	beginErr    error
	commitErr   error
	rollbackErr error

	begun, committed, rolledBack int
	last                         *session
}

func (f *fakeExecutor) Begin(context.Context) (*session, error) {
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	f.begun++
	f.last = &session{}
	return f.last, nil
}

func (f *fakeExecutor) Commit(context.Context, *session) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.committed++
	return nil
}

func (f *fakeExecutor) Rollback(context.Context, *session) error {
	f.rolledBack++
	return f.rollbackErr
}

func step(name string) Unit[*session, string] {
	return func(_ context.Context, s *session) (string, error) {
		s.log = append(s.log, name)
		return name, nil
	}
}

func failing(err error) Unit[*session, string] {
	return func(context.Context, *session) (string, error) { return "", err }
}

func TestExecute_Commit(t *testing.T) {
	ex := &fakeExecutor{}
	got, err := Execute(context.Background(), ex, step("a").AndThen(step("b")), nil)
	require.NoError(t, err)

	assert.Equal(t, "b", got)
	assert.Equal(t, []string{"a", "b"}, ex.last.log)
	assert.Equal(t, 1, ex.committed)
	assert.Zero(t, ex.rolledBack)
}

func TestExecute_RollbackOnError(t *testing.T) {
	boom := errors.New("boom")
	ex := &fakeExecutor{}
	_, err := Execute(context.Background(), ex, step("a").AndThen(failing(boom)).AndThen(step("c")), nil)

	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, []string{"a"}, ex.last.log)
	assert.Zero(t, ex.committed)
	assert.Equal(t, 1, ex.rolledBack)
}

func TestExecute_RollbackErrorCombined(t *testing.T) {
	boom := errors.New("boom")
	rbErr := errors.New("connection lost")
	ex := &fakeExecutor{rollbackErr: rbErr}
	_, err := Execute(context.Background(), ex, failing(boom), nil)

	assert.True(t, errors.Is(err, boom))
	assert.Contains(t, fmt.Sprintf("%+v", err), "connection lost")
}

func TestExecute_RollbackOnPanic(t *testing.T) {
	ex := &fakeExecutor{}
	u := Unit[*session, int](func(context.Context, *session) (int, error) { panic("kaboom") })

	assert.PanicsWithValue(t, "kaboom", func() {
		_, _ = Execute(context.Background(), ex, u, nil)
	})
	assert.Equal(t, 1, ex.rolledBack)
	assert.Zero(t, ex.committed)
}

func TestExecute_BeginErrorAndNilUnit(t *testing.T) {
	ex := &fakeExecutor{beginErr: errors.New("no pool")}
	_, err := Execute(context.Background(), ex, step("a"), nil)
	assert.ErrorContains(t, err, "txn: begin")

	_, err = Execute[*session, string](context.Background(), &fakeExecutor{}, nil, nil)
	assert.True(t, errors.Is(err, ErrNilUnit))
}

func TestExecute_RollbackAfterFailedCommit(t *testing.T) {
	ex := &fakeExecutor{commitErr: errors.New("serialization failure")}
	got, err := Execute(context.Background(), ex, step("a"), nil)
	assert.ErrorContains(t, err, "txn: commit")
	assert.Empty(t, got)
	assert.Zero(t, ex.committed)
	assert.Equal(t, 1, ex.rolledBack)

	ex = &fakeExecutor{commitErr: errors.New("serialization failure"), rollbackErr: errors.New("session closed")}
	_, err = Execute(context.Background(), ex, step("a"), nil)
	assert.ErrorContains(t, err, "txn: commit")
	assert.Contains(t, fmt.Sprintf("%+v", err), "session closed")
}

func TestThen_ChangesResultType(t *testing.T) {
	count := Unit[*session, int](func(_ context.Context, s *session) (int, error) {
		return len(s.log), nil
	})
	ex := &fakeExecutor{}
	got, err := Execute(context.Background(), ex, Then(step("a"), count), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	defer func() {
		err, _ := recover().(error)
		assert.True(t, errors.IsAssertionFailure(err))
	}()
	Then[*session, string, int](nil, count)
}

type order struct {
	ID    string
	Total int
}

func save(o order) Unit[*session, *order] {
	return func(_ context.Context, s *session) (*order, error) {
		s.log = append(s.log, "insert "+o.ID)
		return &o, nil
	}
}

func TestRun_Present(t *testing.T) {
	ex := &fakeExecutor{}
	var buf bytes.Buffer
	got := Run(context.Background(), ex, reply.Of(order{ID: "o-1", Total: 3}), save,
		slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	require.True(t, got.IsPresent())
	assert.Equal(t, "o-1", got.MustGet().ID)
	assert.Equal(t, []string{"insert o-1"}, ex.last.log)
	assert.Contains(t, buf.String(), "transaction committed")
}

func TestRun_EmptyNeverBegins(t *testing.T) {
	ex := &fakeExecutor{}
	invalid := msg.NewError("total must be positive")
	called := false
	got := Run(context.Background(), ex, reply.Empty[order](invalid), func(o order) Unit[*session, *order] {
		called = true
		return save(o)
	}, nil)

	assert.False(t, called)
	assert.Zero(t, ex.begun)
	msgs, err := got.Messages()
	require.NoError(t, err)
	assert.Equal(t, []msg.Message{invalid}, msgs)
}

func TestRun_Failure(t *testing.T) {
	ex := &fakeExecutor{}
	work := func(order) Unit[*session, *order] {
		return func(context.Context, *session) (*order, error) {
			return nil, errors.New("duplicate key")
		}
	}
	got := Run(context.Background(), ex, reply.Of(order{ID: "o-1"}), work, nil)

	msgs, err := got.Messages()
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, msg.Exception, msgs[0].Severity)
	assert.Equal(t, "duplicate key", msgs[0].Text)
	assert.Equal(t, 1, ex.rolledBack)
}

func TestRun_DiagnosedFailure(t *testing.T) {
	ex := &fakeExecutor{}
	conflict := msg.NewError("order already exists")
	work := func(order) Unit[*session, *order] {
		return func(context.Context, *session) (*order, error) {
			return nil, errors.Wrap(reply.Empty[int](conflict).Err(), "insert")
		}
	}
	got := Run(context.Background(), ex, reply.Of(order{ID: "o-1"}), work, nil)

	msgs, err := got.Messages()
	require.NoError(t, err)
	assert.Equal(t, []msg.Message{conflict}, msgs)
}

func TestRun_AbsentResult(t *testing.T) {
	ex := &fakeExecutor{}
	work := func(order) Unit[*session, *order] {
		return func(context.Context, *session) (*order, error) { return nil, nil }
	}
	got := Run(context.Background(), ex, reply.Of(order{}), work, nil)

	assert.False(t, got.IsPresent())
	assert.Equal(t, 1, ex.committed)
}
