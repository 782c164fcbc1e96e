package aws

import (
	"context"
	"log"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// Metric names emitted per request kind.
const (
	MetricRequestAccepted     = "RequestAccepted"
	MetricValidationFailed    = "ValidationFailed"
	MetricDuplicateIdentifier = "DuplicateIdentifier"
)

// Metrics emits request counters to CloudWatch. Emission is best-effort:
// a metrics failure is logged and never surfaced to the caller.
type Metrics struct {
	client    CloudWatchAPI
	namespace string
}

// NewMetrics returns a Metrics emitter bound to a namespace.
func NewMetrics(client CloudWatchAPI, namespace string) *Metrics {
	return &Metrics{
		client:    client,
		namespace: namespace,
	}
}

// Count adds one to the named metric with a Kind dimension.
func (m *Metrics) Count(ctx context.Context, metric, kind string) {
	if m == nil || m.client == nil {
		return
	}
	_, err := m.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: &m.namespace,
		MetricData: []cwtypes.MetricDatum{
			{
				MetricName: &metric,
				Value:      sdkaws.Float64(1),
				Unit:       cwtypes.StandardUnitCount,
				Dimensions: []cwtypes.Dimension{
					{
						Name:  sdkaws.String("Kind"),
						Value: sdkaws.String(kind),
					},
				},
			},
		},
	})
	if err != nil {
		log.Printf("put metric %s/%s failed: %v", metric, kind, err)
	}
}
