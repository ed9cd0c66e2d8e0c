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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/reply/msg"
)

// defaultHTTP maps each severity to the HTTP status a response carrying it
// as the highest severity should get. INFO and WARNING never block a value,
// so they stay on 200.
var defaultHTTP = map[msg.Severity]int{
	msg.Info:      http.StatusOK,
	msg.Warning:   http.StatusOK,
	msg.Error:     http.StatusBadRequest,          // domain or validation failure
	msg.Exception: http.StatusInternalServerError, // unexpected failure of an operation
}

// defaultGRPC is the gRPC counterpart of defaultHTTP.
var defaultGRPC = map[msg.Severity]codes.Code{
	msg.Info:      codes.OK,
	msg.Warning:   codes.OK,
	msg.Error:     codes.InvalidArgument,
	msg.Exception: codes.Internal,
}
