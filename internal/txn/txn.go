// Package txn runs multi-document writes atomically where the deployment
// allows it.
package txn

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Runner executes fn as one unit of work. Repository calls made with the
// ctx handed to fn take part in the unit.
type Runner interface {
	Run(ctx context.Context, fn func(ctx context.Context) error) error
}

// MongoRunner wraps fn in a MongoDB transaction. Standalone servers cannot
// run transactions; there fn is executed without one and a warning is logged.
type MongoRunner struct {
	client *mongo.Client
	log    *zap.Logger
}

func NewMongoRunner(client *mongo.Client, logger *zap.Logger) *MongoRunner {
	return &MongoRunner{client: client, log: logger}
}

func (r *MongoRunner) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	sess, err := r.client.StartSession()
	if err != nil {
		if IsNotSupported(err) {
			return r.fallback(ctx, fn, err)
		}
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	if err != nil && IsNotSupported(err) {
		// the aborted transaction committed nothing, so fn can run again
		return r.fallback(ctx, fn, err)
	}
	return err
}

func (r *MongoRunner) fallback(ctx context.Context, fn func(ctx context.Context) error, cause error) error {
	r.log.Warn("transactions unavailable, running writes sequentially", zap.Error(cause))
	return fn(ctx)
}

// Direct runs fn as is
type Direct struct{}

func (Direct) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

const (
	codeIllegalOperation                   = 20
	codeOperationNotSupportedInTransaction = 263
)

// Messages servers and the driver return when the deployment has no
// transaction support. Matched exactly, never by keyword.
var notSupportedMessages = []string{
	"Transaction numbers are only allowed on a replica set member or mongos",
	"current topology does not support sessions",
}

// IsNotSupported reports whether err means the server cannot run
// transactions, as opposed to a failure inside one.
func IsNotSupported(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) {
		switch ce.Code {
		case codeOperationNotSupportedInTransaction:
			return true
		case codeIllegalOperation:
			return hasNotSupportedMessage(ce.Message)
		}
	}
	return hasNotSupportedMessage(err.Error())
}

func hasNotSupportedMessage(msg string) bool {
	for _, m := range notSupportedMessages {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}
