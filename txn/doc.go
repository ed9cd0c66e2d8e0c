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

// Package txn hands replies over to a transactional executor.
//
// The executor owns sessions of some type S (a *sql.Tx, an ORM session, ...)
// and knows how to begin, commit and roll them back. A Unit is a piece of
// work that runs inside one session. Run connects the two: the value of a
// present Reply is turned into a Unit and executed; an empty Reply never
// opens a session.
package txn
