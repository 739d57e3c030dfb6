/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package retry

import (
	"github.com/securekey/fabric-gateway-client/pkg/common/errors/multi"
	"github.com/securekey/fabric-gateway-client/pkg/common/logging"
)

var logger = logging.NewLogger("gwclient/retry")

// Call is one attempt of a gateway transaction.
type Call func() ([]byte, error)

// Invoker runs a gateway transaction and repeats it while its Handler
// reports the failure as transient.
type Invoker struct {
	handler Handler
	name    string
}

// NewInvoker returns an Invoker for the transaction described by name, for
// example "submit of save". Handlers count attempts, so every transaction
// gets its own Invoker.
func NewInvoker(handler Handler, name string) *Invoker {
	return &Invoker{handler: handler, name: name}
}

// Invoke runs call until it succeeds, fails with an error that is not
// transient, or the handler has no attempts left. The last error is
// returned unchanged.
func (ri *Invoker) Invoke(call Call) ([]byte, error) {
	for attempt := 1; ; attempt++ {
		result, err := call()
		if err == nil {
			if attempt > 1 {
				logger.Infof("%s succeeded on attempt %d", ri.name, attempt)
			}
			return result, nil
		}

		if !ri.transient(err) {
			if attempt > 1 {
				logger.Debugf("%s failed after %d attempts", ri.name, attempt)
			}
			return nil, err
		}
		logger.Warnf("retrying %s after attempt %d: %s", ri.name, attempt, err)
	}
}

// transient reports whether the handler allows a retry for err. A multi
// error is transient when any of its errors is.
func (ri *Invoker) transient(err error) bool {
	errs, ok := err.(multi.Errors)
	if !ok {
		errs = multi.Errors{err}
	}
	for _, e := range errs {
		if ri.handler.Required(e) {
			return true
		}
	}
	return false
}
