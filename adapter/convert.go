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

package adapter

import (
	"log/slog"
	"net/http"
	"strconv"

	"google.golang.org/grpc/codes"

	"dirpx.dev/reply"
	"dirpx.dev/reply/apis"
	"dirpx.dev/reply/msg"
	"dirpx.dev/reply/service"
)

// Success is the status of a response that carries no diagnostics.
var Success = apis.Status{HTTP: http.StatusOK, GRPC: codes.OK}

// StatusOf resolves the transport status of msgs from the first message with
// the highest severity. Without messages it returns Success.
func StatusOf(m apis.Mapper, msgs []msg.Message) apis.Status {
	top, ok := msg.Highest(msgs)
	if !ok {
		return Success
	}
	return m.Status(top.Severity, top.Reason)
}

// ReplyStatus is Success for a present reply and the status of its messages
// otherwise.
func ReplyStatus[T any](m apis.Mapper, r reply.Reply[T]) apis.Status {
	msgs, err := r.Messages()
	if err != nil {
		return Success
	}
	return StatusOf(m, msgs)
}

// MessageView converts a message into its wire shape.
func MessageView(m msg.Message) apis.MessageView {
	return apis.MessageView{
		Severity: m.Severity.String(),
		Text:     m.Text,
		Reason:   string(m.Reason),
		Field:    m.Field,
	}
}

// MessageViews converts msgs preserving order. The result is never nil so
// that it encodes as an empty JSON array.
func MessageViews(msgs []msg.Message) []apis.MessageView {
	out := make([]apis.MessageView, len(msgs))
	for i, m := range msgs {
		out[i] = MessageView(m)
	}
	return out
}

// PackageView converts a service package into its wire shape.
func PackageView[T any](p service.Package[T]) apis.PackageView {
	return apis.PackageView{
		Value:    p.Value(),
		Messages: MessageViews(p.Messages()),
	}
}

// ReplyView converts a reply: a present reply yields its value and no
// messages, an empty one a nil value and its messages.
func ReplyView[T any](r reply.Reply[T]) apis.PackageView {
	if v, err := r.Get(); err == nil {
		return apis.PackageView{Value: v, Messages: []apis.MessageView{}}
	}
	msgs, _ := r.Messages()
	return apis.PackageView{Messages: MessageViews(msgs)}
}

// LogAttr renders msgs as a single slog group attribute under key.
func LogAttr(key string, msgs []msg.Message) slog.Attr {
	attrs := make([]any, 0, len(msgs))
	for i, m := range msgs {
		group := []any{
			slog.String("severity", m.Severity.String()),
			slog.String("text", m.Text),
		}
		if m.Reason != "" {
			group = append(group, slog.String("reason", string(m.Reason)))
		}
		if m.Field != "" {
			group = append(group, slog.String("field", m.Field))
		}
		attrs = append(attrs, slog.Group(strconv.Itoa(i), group...))
	}
	return slog.Group(key, attrs...)
}

// LogLevel maps the highest severity of msgs onto a slog level.
func LogLevel(msgs []msg.Message) slog.Level {
	top, ok := msg.Highest(msgs)
	if !ok {
		return slog.LevelDebug
	}
	switch top.Severity {
	case msg.Info:
		return slog.LevelInfo
	case msg.Warning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
