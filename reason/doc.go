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

// Package reason defines the optional machine-readable marker of a diagnostic
// message.
//
// Where the message text tells a human what went wrong, a Reason tells a
// program which rule produced it, e.g.:
//
//   - "order.total.negative"
//   - "customer.email.format"
//   - "validation.candidate.absent"
//
// Reasons are dot-separated identifiers of one to four lowercase segments.
// The zero value ("") is valid and means "no reason given"; transport
// mappers then fall back to the severity alone.
package reason
