package epaper

import "context"

// NoopEventSink is a no-operation implementation of EventSink
// Useful for production when you don't need event handling or for testing
type NoopEventSink struct{}

// NewNoopEventSink creates a new no-operation event sink
func NewNoopEventSink() EventSink {
	return &NoopEventSink{}
}

// EditionCreated does nothing and returns nil
func (n *NoopEventSink) EditionCreated(ctx context.Context, edition *Edition) error {
	return nil
}

// EditionUpdated does nothing and returns nil
func (n *NoopEventSink) EditionUpdated(ctx context.Context, edition *Edition) error {
	return nil
}

// EditionPublished does nothing and returns nil
func (n *NoopEventSink) EditionPublished(ctx context.Context, edition *Edition) error {
	return nil
}

// EditionApproved does nothing and returns nil
func (n *NoopEventSink) EditionApproved(ctx context.Context, edition *Edition) error {
	return nil
}

// EditionDeleted does nothing and returns nil
func (n *NoopEventSink) EditionDeleted(ctx context.Context, editionID string) error {
	return nil
}

// LoggingEventSink is an event sink that logs events but takes no other action
// Useful for development and debugging
type LoggingEventSink struct {
	logger Logger
}

// Logger interface for logging events
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// NewLoggingEventSink creates a new logging event sink
func NewLoggingEventSink(logger Logger) EventSink {
	return &LoggingEventSink{logger: logger}
}

// EditionCreated logs the edition creation event
func (l *LoggingEventSink) EditionCreated(ctx context.Context, edition *Edition) error {
	l.logger.Infof("Edition created: ID=%s, Title=%s, Language=%s", edition.ID, edition.Title, edition.Language)
	return nil
}

// EditionUpdated logs the edition update event
func (l *LoggingEventSink) EditionUpdated(ctx context.Context, edition *Edition) error {
	l.logger.Infof("Edition updated: ID=%s, Title=%s, Pages=%d", edition.ID, edition.Title, len(edition.Pages))
	return nil
}

// EditionPublished logs the publish decision event
func (l *LoggingEventSink) EditionPublished(ctx context.Context, edition *Edition) error {
	l.logger.Infof("Edition publish decided: ID=%s, Status=%s", edition.ID, edition.Status)
	return nil
}

// EditionApproved logs the approval event
func (l *LoggingEventSink) EditionApproved(ctx context.Context, edition *Edition) error {
	l.logger.Infof("Edition approved: ID=%s, Title=%s", edition.ID, edition.Title)
	return nil
}

// EditionDeleted logs the edition deletion event
func (l *LoggingEventSink) EditionDeleted(ctx context.Context, editionID string) error {
	l.logger.Infof("Edition deleted: ID=%s", editionID)
	return nil
}
