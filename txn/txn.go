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
	"context"
	"io"
	"log/slog"

	"github.com/cockroachdb/errors"

	"dirpx.dev/reply"
	"dirpx.dev/reply/adapter"
	"dirpx.dev/reply/apis"
	"dirpx.dev/reply/msg"
)

// ErrNilUnit is returned by Execute for a nil Unit.
var ErrNilUnit = errors.New("txn: nil unit")

// Executor opens, commits and rolls back sessions of type S.
type Executor[S any] interface {
	Begin(ctx context.Context) (S, error)
	Commit(ctx context.Context, s S) error
	Rollback(ctx context.Context, s S) error
}

// Unit is work executed inside a session.
type Unit[S, R any] func(ctx context.Context, s S) (R, error)

// AndThen runs u and then next in the same session, returning next's result.
// The chain stops at the first error.
func (u Unit[S, R]) AndThen(next Unit[S, R]) Unit[S, R] {
	return Then(u, next)
}

// Then is AndThen for units with different result types. The result of
// first is discarded.
func Then[S, A, B any](first Unit[S, A], next Unit[S, B]) Unit[S, B] {
	if first == nil || next == nil {
		panic(errors.AssertionFailedf("txn: Then called with a nil unit"))
	}
	return func(ctx context.Context, s S) (B, error) {
		if _, err := first(ctx, s); err != nil {
			var zero B
			return zero, err
		}
		return next(ctx, s)
	}
}

// Execute runs u in a new session: it commits when u succeeds and rolls back
// when u fails, u panics or Commit fails. A panic is re-raised after the
// rollback.
//
// A nil logger disables logging.
func Execute[S, R any](ctx context.Context, ex Executor[S], u Unit[S, R], logger *slog.Logger) (res R, err error) {
	if u == nil {
		return res, ErrNilUnit
	}
	logger = orDiscard(logger)

	s, err := ex.Begin(ctx)
	if err != nil {
		return res, errors.Wrap(err, "txn: begin")
	}
	logger.DebugContext(ctx, "transaction begin")

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := ex.Rollback(ctx, s); rbErr != nil {
			logger.ErrorContext(ctx, "transaction rollback failed", slog.Any("error", rbErr))
			if err != nil {
				err = errors.CombineErrors(err, errors.Wrap(rbErr, "txn: rollback"))
			}
		} else {
			logger.WarnContext(ctx, "transaction rolled back")
		}
	}()

	res, err = u(ctx, s)
	if err != nil {
		return res, err
	}

	if err = ex.Commit(ctx, s); err != nil {
		var zero R
		return zero, errors.Wrap(err, "txn: commit")
	}
	committed = true
	logger.DebugContext(ctx, "transaction committed")
	return res, nil
}

// Run hands the value of r to work and executes the resulting unit.
//
//   - An empty r is passed through with its messages; no session is opened.
//   - A failing unit yields an empty Reply. Errors carrying diagnostics
//     (apis.Diagnosed) contribute their messages, any other error becomes a
//     single EXCEPTION message with the error text.
//   - An absent result yields an empty Reply with the default message.
func Run[S, T, R any](
	ctx context.Context,
	ex Executor[S],
	r reply.Reply[T],
	work func(T) Unit[S, R],
	logger *slog.Logger,
) reply.Reply[R] {
	if work == nil {
		panic(errors.AssertionFailedf("txn: Run called with a nil work function"))
	}
	v, err := r.Get()
	if err != nil {
		msgs, _ := r.Messages()
		return reply.Empty[R](msgs...)
	}

	logger = orDiscard(logger)
	res, err := Execute(ctx, ex, work(v), logger)
	if err != nil {
		msgs := diagnostics(err)
		logger.Log(ctx, adapter.LogLevel(msgs), "transaction failed", adapter.LogAttr("messages", msgs))
		return reply.Empty[R](msgs...)
	}
	return reply.OfNullable(res)
}

func diagnostics(err error) []msg.Message {
	var d apis.Diagnosed
	if errors.As(err, &d) {
		if msgs := d.Diagnostics(); len(msgs) > 0 {
			return msgs
		}
	}
	return msg.Exceptions(err.Error())
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return logger
}
