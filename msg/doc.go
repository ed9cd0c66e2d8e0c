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

// Package msg defines the diagnostic message carried by replies, validators
// and service packages.
//
// A message is plain data: a Severity, a human-oriented Text and two optional
// machine-oriented markers, a dotted Reason (see package reason) and a Field
// path. Messages are never thrown or returned as errors by the core; they are
// accumulated and handed to whatever boundary reports them.
//
// Severities are ordered:
//
//	INFO < WARNING < ERROR < EXCEPTION
//
// so callers can ask for the most severe entry of a diagnostics list with
// Highest.
//
// The factory helpers (Error, Errors, Warning, Warnings, ...) build a single
// message or a single-element list for the common case of one diagnostic.
package msg
