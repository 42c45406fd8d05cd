package invalidation

import (
	"context"
	"fmt"

	"github.com/mlziade/lambda-cloudfront-invalidation-front/pkg/cdn"
	"github.com/mlziade/lambda-cloudfront-invalidation-front/pkg/util"
	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"
)

// Handler runs the invalidation sequence against a CDN client.
type Handler struct {
	CDN cdn.API
	Log *zap.SugaredLogger
}

// Handle validates the request, checks the distribution, submits the
// invalidation and assembles the response. Every exit path returns exactly
// one envelope; the Lambda error channel is never used.
func (h *Handler) Handle(ctx context.Context, request *Request) *Response {
	log := h.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	log = log.With("InvocationId", uuid.NewV4().String())

	if request == nil || request.DistributionID == "" {
		log.Errorw("distribution_id is required in the event payload")
		return errorResponse(400, "distribution_id is required in the event payload")
	}

	paths := request.Paths
	if len(paths) == 0 {
		paths = []string{"/*"}
	}

	log.Infow("checking distribution", "DistributionId", request.DistributionID)

	enabled, err := h.CDN.DistributionEnabled(ctx, request.DistributionID)
	if err != nil {
		log.Errorw("distribution check failed", "DistributionId", request.DistributionID, "Error", err)
		return failureResponse(500, util.FormatAWSError(err))
	}

	if !enabled {
		log.Infow("distribution not found or not enabled", "DistributionId", request.DistributionID)
		return errorResponse(404, fmt.Sprintf("CloudFront distribution %s not found", request.DistributionID))
	}

	log.Infow("creating invalidation", "DistributionId", request.DistributionID, "Paths", paths)

	invalidationId, err := h.CDN.CreateInvalidation(ctx, request.DistributionID, paths)
	if err != nil || invalidationId == "" {
		// The underlying platform error is logged but not surfaced; the
		// body stays generic, unlike the distribution check above.
		log.Errorw("failed to create invalidation",
			"DistributionId", request.DistributionID,
			"Paths", paths,
			"Error", err)
		return errorResponse(500, "Failed to create invalidation")
	}

	log.Infow("invalidation created",
		"DistributionId", request.DistributionID,
		"InvalidationId", invalidationId,
		"Paths", paths)

	return successResponse(request.DistributionID, invalidationId, paths)
}
