// Package log defines the structured logging facade used across lib-cron.
//
// Callers depend on the Logger interface and the typed Field constructors;
// the zap package provides the production implementation.
package log
