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

package msg

// NewInfo returns an INFO message.
func NewInfo(text string) Message { return New(Info, text) }

// NewWarning returns a WARNING message.
func NewWarning(text string) Message { return New(Warning, text) }

// NewError returns an ERROR message.
func NewError(text string) Message { return New(Error, text) }

// NewException returns an EXCEPTION message.
func NewException(text string) Message { return New(Exception, text) }

// Infos returns a single-element list holding an INFO message.
func Infos(text string) []Message { return []Message{NewInfo(text)} }

// Warnings returns a single-element list holding a WARNING message.
func Warnings(text string) []Message { return []Message{NewWarning(text)} }

// Errors returns a single-element list holding an ERROR message.
func Errors(text string) []Message { return []Message{NewError(text)} }

// Exceptions returns a single-element list holding an EXCEPTION message.
func Exceptions(text string) []Message { return []Message{NewException(text)} }
