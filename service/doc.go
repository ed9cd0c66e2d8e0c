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

// Package service adapts replies for the edge of a service.
//
// A Package is the terminal form of a computation: it always holds a usable
// value (a caller-supplied fallback replaces a missing one) together with
// every diagnostic collected on the way. It offers no further
// transformations; it is handed to a transport (see packages httpx, grpcx
// and report) and discarded.
package service
