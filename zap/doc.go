// Package zap provides the production implementation of the log.Logger
// facade, built on go.uber.org/zap with OpenTelemetry log bridging and
// trace correlation.
package zap
