/*
 *	Copyright 2024 The moldata authors
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */

package datasets

import "github.com/pkg/errors"

var (
	// RetrievalError is returned when neither the local cache nor the
	// remote repository could supply a dataset. It surfaces after the
	// bounded automatic retry; it is not retried further.
	RetrievalError = errors.New("dataset retrieval failed")

	// InvalidFractionError is returned for split fractions that are
	// negative, don't sum to ~1, or would leave a partition empty.
	InvalidFractionError = errors.New("invalid split fractions")

	// UnsupportedFormatError is returned by GetData for formats the
	// loader doesn't know how to render.
	UnsupportedFormatError = errors.New("unsupported data format")
)
