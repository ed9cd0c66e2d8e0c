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

package grpcx

import (
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"

	"dirpx.dev/reply"
	"dirpx.dev/reply/adapter"
	"dirpx.dev/reply/apis"
	"dirpx.dev/reply/msg"
	"dirpx.dev/reply/reason"
)

// Domain is the ErrorInfo domain of details produced by this package.
const Domain = "reply.dirpx.dev"

// ErrorInfo metadata keys.
const (
	MetaSeverity = "severity"
	MetaText     = "text"
	MetaReason   = "reason"
	MetaField    = "field"
)

// Status builds a gRPC status for msgs. The code is resolved by m from the
// highest-severity message and the status message is that message's text.
// Without messages the status is OK and carries no details.
func Status(m apis.Mapper, msgs []msg.Message) *status.Status {
	top, ok := msg.Highest(msgs)
	if !ok {
		return status.New(codes.OK, "")
	}
	st := status.New(adapter.StatusOf(m, msgs).GRPC, top.Text)

	details := make([]protoadapt.MessageV1, 0, len(msgs)+1)
	var violations []*errdetails.BadRequest_FieldViolation
	for _, cur := range msgs {
		details = append(details, ErrorInfo(cur))
		if cur.Field != "" {
			violations = append(violations, &errdetails.BadRequest_FieldViolation{
				Field:       cur.Field,
				Description: cur.Text,
			})
		}
	}
	if len(violations) > 0 {
		details = append(details, &errdetails.BadRequest{FieldViolations: violations})
	}

	with, err := st.WithDetails(details...)
	if err != nil {
		return st
	}
	return with
}

// Error is Status(m, msgs).Err() except that it never returns nil for a
// non-empty msgs: a failure the mapper resolves to OK is reported as Unknown.
func Error(m apis.Mapper, msgs []msg.Message) error {
	if len(msgs) == 0 {
		return nil
	}
	st := Status(m, msgs)
	if st.Code() == codes.OK {
		p := st.Proto()
		p.Code = int32(codes.Unknown)
		st = status.FromProto(p)
	}
	return st.Err()
}

// Result converts a reply into the (value, error) pair a gRPC handler returns.
func Result[T any](m apis.Mapper, r reply.Reply[T]) (T, error) {
	if v, err := r.Get(); err == nil {
		return v, nil
	}
	var zero T
	msgs, _ := r.Messages()
	return zero, Error(m, msgs)
}

// ErrorInfo encodes a single message as an ErrorInfo detail. The ErrorInfo
// reason is the message reason in UPPER_SNAKE_CASE, or the severity name when
// the message has none.
func ErrorInfo(m msg.Message) *errdetails.ErrorInfo {
	md := map[string]string{
		MetaSeverity: m.Severity.String(),
		MetaText:     m.Text,
	}
	code := m.Severity.String()
	if m.Reason != reason.Empty {
		md[MetaReason] = string(m.Reason)
		code = strings.ToUpper(strings.ReplaceAll(string(m.Reason), ".", "_"))
	}
	if m.Field != "" {
		md[MetaField] = m.Field
	}
	return &errdetails.ErrorInfo{Reason: code, Domain: Domain, Metadata: md}
}

// Messages extracts the messages carried by err. ok is false when err is not
// a gRPC status or carries no ErrorInfo of Domain. Details that fail to
// decode are skipped.
func Messages(err error) (msgs []msg.Message, ok bool) {
	st, isStatus := status.FromError(err)
	if !isStatus || st == nil {
		return nil, false
	}
	for _, d := range st.Details() {
		info, isInfo := d.(*errdetails.ErrorInfo)
		if !isInfo || info.GetDomain() != Domain {
			continue
		}
		m, decoded := fromErrorInfo(info)
		if !decoded {
			continue
		}
		msgs = append(msgs, m)
	}
	return msgs, len(msgs) > 0
}

func fromErrorInfo(info *errdetails.ErrorInfo) (msg.Message, bool) {
	md := info.GetMetadata()
	sev, err := msg.ParseSeverity(md[MetaSeverity])
	if err != nil {
		return msg.Message{}, false
	}
	r, err := reason.Parse(md[MetaReason])
	if err != nil {
		return msg.Message{}, false
	}
	return msg.Message{Severity: sev, Text: md[MetaText], Reason: r, Field: md[MetaField]}, true
}
