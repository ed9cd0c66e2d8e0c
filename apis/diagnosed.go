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

package apis

import "dirpx.dev/reply/msg"

// Diagnosed is an error that carries diagnostic messages instead of (or in
// addition to) a single error string. reply.Failure implements it.
//
// Implementations SHOULD return a copy that the caller may keep. An empty
// result means "no diagnostics"; callers then treat the error as opaque.
type Diagnosed interface {
	error

	// Diagnostics returns the ordered messages explaining the failure.
	Diagnostics() []msg.Message
}
