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

// MessageView is the wire shape of a diagnostic message.
type MessageView struct {
	// Severity is the upper-case severity name, e.g. "ERROR".
	Severity string `json:"severity"`
	// Text is the human-readable description.
	Text string `json:"text"`
	// Reason is the optional dotted marker, e.g. "order.total.negative".
	Reason string `json:"reason,omitempty"`
	// Field is the optional path to the offending field.
	Field string `json:"field,omitempty"`
}

// PackageView is the wire shape of a service package: the best available
// value together with every diagnostic collected on the way.
//
// Value is left as any so that the adapter can hand in either a plain Go
// value or pre-encoded JSON (json.RawMessage).
type PackageView struct {
	Value    any           `json:"value"`
	Messages []MessageView `json:"messages"`
}
