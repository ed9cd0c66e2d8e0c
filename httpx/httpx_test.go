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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"dirpx.dev/reply"
	"dirpx.dev/reply/apis"
	"dirpx.dev/reply/mapper"
	"dirpx.dev/reply/msg"
	"dirpx.dev/reply/reason"
	"dirpx.dev/reply/service"
)

type order struct {
	ID    string `json:"id"`
	Total int    `json:"total"`
}

func TestWriteReply_Present(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, WriteReply(rec, mapper.MustNew(), reply.Of(order{ID: "o-1", Total: 3})))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ContentType, rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"value":{"id":"o-1","total":3},"messages":[]}`, rec.Body.String())
}

func TestWriteReply_Empty(t *testing.T) {
	m := mapper.MustNew(mapper.WithHTTPPrefix(msg.Error, "order", 422))
	r := reply.Empty[order](
		msg.NewError("total must be positive").
			WithReason(reason.MustParse("order.total.negative")).
			WithField("total"),
	)

	rec := httptest.NewRecorder()
	require.NoError(t, WriteReply(rec, m, r))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"value":null,"messages":[
		{"severity":"ERROR","text":"total must be positive","reason":"order.total.negative","field":"total"}
	]}`, rec.Body.String())
}

func TestWritePackage(t *testing.T) {
	p := service.Of([]string{"a"}, msg.NewWarning("list truncated"))

	rec := httptest.NewRecorder()
	require.NoError(t, WritePackage(rec, mapper.MustNew(), p))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got []string
	views, err := Decode(rec.Body.Bytes(), &got)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got)
	assert.Equal(t, []apis.MessageView{{Severity: "WARNING", Text: "list truncated"}}, views)
}

func TestWritePackage_FallbackWithException(t *testing.T) {
	p := service.OfReply(reply.Empty[int](msg.NewException("db down")), -1)

	rec := httptest.NewRecorder()
	require.NoError(t, WritePackage(rec, mapper.MustNew(), p))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"value":-1,"messages":[{"severity":"EXCEPTION","text":"db down"}]}`, rec.Body.String())
}

func TestWriteReply_ProtoValue(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, WriteReply(rec, mapper.MustNew(), reply.Of(wrapperspb.String("hello"))))
	assert.JSONEq(t, `{"value":"hello","messages":[]}`, rec.Body.String())

	got := &wrapperspb.StringValue{}
	_, err := Decode(rec.Body.Bytes(), got)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.GetValue())
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode([]byte("{"), nil)
	assert.Error(t, err)

	var n int
	_, err = Decode([]byte(`{"value":"x","messages":[]}`), &n)
	assert.Error(t, err)
}
