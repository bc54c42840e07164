package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type EligibilityService struct {
	model    Generator
	cache    *redis.Client
	cacheTTL time.Duration
	log      zerolog.Logger
}

func NewEligibilityService(model Generator, cache *redis.Client, cacheTTL time.Duration, log zerolog.Logger) *EligibilityService {
	return &EligibilityService{
		model:    model,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

type AssessInput struct {
	Income           string
	CreditScore      string
	EmploymentStatus string
	LoanAmount       string
}

// Assess forwards the applicant details to the external model and returns
// its text verbatim. The decision criteria live entirely inside the model;
// the response is not parsed or validated here.
func (s *EligibilityService) Assess(ctx context.Context, input AssessInput) (string, error) {
	input.Income = strings.TrimSpace(input.Income)
	input.CreditScore = strings.TrimSpace(input.CreditScore)
	input.EmploymentStatus = strings.TrimSpace(input.EmploymentStatus)
	input.LoanAmount = strings.TrimSpace(input.LoanAmount)
	if input.Income == "" || input.CreditScore == "" || input.EmploymentStatus == "" || input.LoanAmount == "" {
		return "", ErrMissingFields
	}

	prompt := buildPrompt(input)
	cacheKey := "eligibility:" + promptHash(prompt)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			return cached, nil
		}
	}

	result, err := s.model.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, result, s.cacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Msg("cache eligibility result failed")
		}
	}

	return result, nil
}

func buildPrompt(input AssessInput) string {
	return fmt.Sprintf(`You are a loan eligibility assessment engine for an Indian bank. Evaluate the applicant below against typical Indian bank lending criteria and respond with exactly one of "Eligible" or "Not Eligible" and nothing else.

Applicant details:
- Monthly income (INR): %s
- Credit score: %s
- Employment status: %s
- Requested loan amount (INR): %s`,
		input.Income, input.CreditScore, input.EmploymentStatus, input.LoanAmount)
}

func promptHash(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}
