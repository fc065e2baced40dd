package models

import "fmt"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// BatchParseError means the trigger payload itself is not valid structured
// data; it is fatal for the whole poll.
type BatchParseError struct {
	Err error
}

func (e *BatchParseError) Error() string {
	return fmt.Sprintf("failed to parse instance batch: %s", e.Err)
}

func (e *BatchParseError) Unwrap() error {
	return e.Err
}

// InstanceConfigError means one instance entry cannot be processed, typically
// because identity fields are missing. It fails only that instance.
type InstanceConfigError struct {
	ProjectID  string
	InstanceID string
	Reason     string
}

func NewInstanceConfigError(projectID, instanceID, reason string) *InstanceConfigError {
	return &InstanceConfigError{ProjectID: projectID, InstanceID: instanceID, Reason: reason}
}

func (e *InstanceConfigError) Error() string {
	return fmt.Sprintf("invalid instance config %s/%s: %s", e.ProjectID, e.InstanceID, e.Reason)
}

// MetadataFetchError means the metadata provider failed for one instance.
type MetadataFetchError struct {
	ProjectID  string
	InstanceID string
	Err        error
}

func (e *MetadataFetchError) Error() string {
	return fmt.Sprintf("failed to fetch metadata for %s/%s: %s", e.ProjectID, e.InstanceID, e.Err)
}

func (e *MetadataFetchError) Unwrap() error {
	return e.Err
}

// MetricSampleError means the metrics backend query failed for one metric of
// one instance; the metric is skipped and its siblings keep their results.
type MetricSampleError struct {
	Metric string
	Err    error
}

func (e *MetricSampleError) Error() string {
	return fmt.Sprintf("failed to sample metric %s: %s", e.Metric, e.Err)
}

func (e *MetricSampleError) Unwrap() error {
	return e.Err
}

// DispatchError means the message transport rejected the instance's scaling
// message. There is no retry within the poll; the next cycle covers it.
type DispatchError struct {
	Topic string
	Err   error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("failed to dispatch to %s: %s", e.Topic, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}
