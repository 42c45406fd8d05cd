package cdn

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudfront"
	"github.com/aws/aws-sdk-go/service/cloudfront/cloudfrontiface"
	"github.com/fatih/structs"
	"github.com/mlziade/lambda-cloudfront-invalidation-front/pkg/util"
	"go.uber.org/zap"
)

// API is the narrow CloudFront surface the invalidation function consumes.
type API interface {
	DistributionEnabled(ctx context.Context, distributionId string) (bool, error)
	CreateInvalidation(ctx context.Context, distributionId string, paths []string) (string, error)
}

type Client struct {
	svc cloudfrontiface.CloudFrontAPI
	log *zap.SugaredLogger
}

func NewClient(log *zap.SugaredLogger) *Client {
	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	}))

	return &Client{
		svc: cloudfront.New(sess),
		log: log,
	}
}

// DistributionEnabled reports whether the distribution exists and is enabled.
// A missing distribution is a negative result, not an error. Deployment status
// is logged but ignored: a distribution mid-deployment is still usable.
func (c *Client) DistributionEnabled(ctx context.Context, distributionId string) (bool, error) {
	getDistributionRequest := &cloudfront.GetDistributionInput{
		Id: aws.String(distributionId),
	}

	c.log.Infow("CloudFront GetDistribution Request", "Request", structs.Map(getDistributionRequest))

	getDistributionResponse, err := c.svc.GetDistributionWithContext(ctx, getDistributionRequest)
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == cloudfront.ErrCodeNoSuchDistribution {
			c.log.Infow("distribution does not exist", "DistributionId", distributionId)
			return false, nil
		}
		util.LogAWSError("CloudFront GetDistribution Error: %+v", err)
		return false, err
	}

	distribution := getDistributionResponse.Distribution
	enabled := aws.BoolValue(distribution.DistributionConfig.Enabled)

	c.log.Infow("distribution state",
		"DistributionId", distributionId,
		"Status", aws.StringValue(distribution.Status),
		"Enabled", enabled)

	return enabled, nil
}

// CreateInvalidation submits an invalidation batch for the given paths and
// returns the platform-assigned invalidation id. The caller reference has
// second granularity, so two submissions within the same second can collide.
func (c *Client) CreateInvalidation(ctx context.Context, distributionId string, paths []string) (string, error) {
	callerReference := fmt.Sprintf("lambda-invalidation-%d", time.Now().Unix())

	createInvalidationRequest := &cloudfront.CreateInvalidationInput{
		DistributionId: aws.String(distributionId),
		InvalidationBatch: &cloudfront.InvalidationBatch{
			CallerReference: aws.String(callerReference),
			Paths: &cloudfront.Paths{
				Quantity: aws.Int64(int64(len(paths))),
				Items:    aws.StringSlice(paths),
			},
		},
	}

	c.log.Infow("CloudFront CreateInvalidation Request", "Request", structs.Map(createInvalidationRequest))

	createInvalidationResponse, err := c.svc.CreateInvalidationWithContext(ctx, createInvalidationRequest)
	if err != nil {
		util.LogAWSError("CloudFront CreateInvalidation Error: %+v", err)
		return "", err
	}

	c.log.Infow("CloudFront CreateInvalidation Response", "Response", structs.Map(createInvalidationResponse))

	return aws.StringValue(createInvalidationResponse.Invalidation.Id), nil
}
