// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"

	"github.com/walteh/markfix/pkg/status"
)

// 🔧 NewFixOperation creates an operation that rewrites files in place
func NewFixOperation(opts Options) (Operation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &fixOperation{BaseOperation: base}, nil
}

// 🔧 fixOperation implements the fix operation
type fixOperation struct {
	BaseOperation
}

// 🏃 Execute runs the fix operation
func (op *fixOperation) Execute(ctx context.Context, root string) (*status.Summary, error) {
	return op.execute(ctx, root, false)
}
