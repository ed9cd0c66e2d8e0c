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
	"context"
	"io"
	"log/slog"

	"github.com/cockroachdb/errors"
	"google.golang.org/grpc"

	"dirpx.dev/reply/adapter"
	"dirpx.dev/reply/apis"
)

// UnaryServerInterceptor converts handler errors that carry diagnostics
// (apis.Diagnosed, such as reply.Failure) into rich gRPC statuses resolved by
// m. Other errors pass through unchanged.
//
// Converted failures are logged on logger at a level derived from the highest
// severity. A nil logger disables logging.
func UnaryServerInterceptor(m apis.Mapper, logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var d apis.Diagnosed
		if !errors.As(err, &d) {
			return nil, err
		}
		msgs := d.Diagnostics()
		if len(msgs) == 0 {
			return nil, err
		}

		out := Error(m, msgs)
		logger.Log(ctx, adapter.LogLevel(msgs), "request failed",
			slog.String("method", info.FullMethod),
			adapter.LogAttr("messages", msgs),
		)
		return nil, out
	}
}
