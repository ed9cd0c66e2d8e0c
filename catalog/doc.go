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

// Package catalog loads diagnostic messages from YAML or TOML documents,
// keyed by reason:
//
//	messages:
//	  order.total.negative:
//	    severity: error
//	    text: Order total must be positive
//	    field: total
//
// The TOML form uses the same keys:
//
//	[messages."order.total.negative"]
//	severity = "error"
//	text = "Order total must be positive"
//	field = "total"
//
// Entries become msg.Message values with their reason set, so validators can
// take their messages from a catalog instead of hard-coding text.
package catalog
