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

package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/cockroachdb/errors"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"dirpx.dev/reply"
	"dirpx.dev/reply/adapter"
	"dirpx.dev/reply/apis"
	"dirpx.dev/reply/service"
)

// ContentType is set on every response written by this package.
const ContentType = "application/json"

// WritePackage writes p with a status resolved from its messages.
func WritePackage[T any](rw http.ResponseWriter, m apis.Mapper, p service.Package[T]) error {
	return write(rw, adapter.StatusOf(m, p.Messages()).HTTP, adapter.PackageView(p))
}

// WriteReply writes r: a present reply as 200 with its value, an empty one
// with a status resolved from its messages and a null value.
func WriteReply[T any](rw http.ResponseWriter, m apis.Mapper, r reply.Reply[T]) error {
	return write(rw, adapter.ReplyStatus(m, r).HTTP, adapter.ReplyView(r))
}

func write(rw http.ResponseWriter, code int, view apis.PackageView) error {
	if pm, ok := view.Value.(proto.Message); ok {
		// protojson honours json_name and well-known types
		raw, err := protojson.Marshal(pm)
		if err != nil {
			return errors.Wrap(err, "httpx: encode proto value")
		}
		view.Value = json.RawMessage(raw)
	}

	body, err := json.Marshal(view)
	if err != nil {
		return errors.Wrap(err, "httpx: encode body")
	}

	rw.Header().Set("Content-Type", ContentType)
	rw.WriteHeader(code)
	if _, err := rw.Write(body); err != nil {
		return errors.Wrap(err, "httpx: write body")
	}
	return nil
}

// Decode reads a body written by this package. Value is decoded into dst
// when the body carries one.
func Decode(body []byte, dst any) ([]apis.MessageView, error) {
	var raw struct {
		Value    json.RawMessage     `json:"value"`
		Messages []apis.MessageView `json:"messages"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, errors.Wrap(err, "httpx: decode body")
	}
	if dst != nil && len(raw.Value) > 0 && string(raw.Value) != "null" {
		var err error
		if pm, ok := dst.(proto.Message); ok {
			err = protojson.Unmarshal(raw.Value, pm)
		} else {
			err = json.Unmarshal(raw.Value, dst)
		}
		if err != nil {
			return nil, errors.Wrap(err, "httpx: decode value")
		}
	}
	return raw.Messages, nil
}
