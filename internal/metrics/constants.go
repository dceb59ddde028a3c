package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every metric exported by the service
const Namespace = "cases"

// HTTP metric names
const (
	MetricNameHTTPResponseSize     = "http_response_size_bytes"
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameCasesOpened     = "case_openings_total"
	MetricNameUpgrades        = "upgrades_total"
	MetricNameContractsFused  = "contracts_fused_total"
	MetricNameItemsSold       = "items_sold_total"
	MetricNameMoneySpent      = "money_spent_total"
	MetricNameMoneyEarned     = "money_earned_total"
	MetricNameMoneyDeposited  = "money_deposited_total"
	MetricNameItemValueMinted = "item_value_minted_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPResponseSize     = "HTTP response body size in bytes"
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextCasesOpened     = "Total number of cases opened"
	HelpTextUpgrades        = "Total number of upgrade trials"
	HelpTextContractsFused  = "Total number of contracts fused"
	HelpTextItemsSold       = "Total number of items sold"
	HelpTextMoneySpent      = "Total value staked on cases, upgrades and contracts"
	HelpTextMoneyEarned     = "Total balance credited from selling items"
	HelpTextMoneyDeposited  = "Total balance deposited"
	HelpTextItemValueMinted = "Total price of items granted to accounts"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelCase      = "case"
	LabelTier      = "tier"
	LabelResult    = "result"
	LabelRarity    = "rarity"
	LabelOperation = "operation"
)

// Label values
const (
	ResultSuccess   = "success"
	ResultFailure   = "failure"
	PathUnmatched   = "unmatched"
	OperationCase   = "case"
	OperationUpg    = "upgrade"
	OperationFusion = "contract"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
