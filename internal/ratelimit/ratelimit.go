// Package ratelimit tracks how many generative-API calls a run has made,
// so a feed storm cannot burn through the daily Gemini/Imagen quota.
package ratelimit

import (
	"fmt"
	"sync"
	"time"

	"hindnews/internal/logger"
)

// AILimiter counts Gemini text and Imagen image requests against
// configurable budgets. Counters reset daily.
type AILimiter struct {
	mu          sync.Mutex
	geminiCount int
	imagenCount int
	totalCount  int
	maxGemini   int
	maxImagen   int
	maxTotal    int
	resetTime   time.Time
}

// New creates a limiter. A limit of 0 means unlimited for that service.
func New(maxGemini, maxImagen, maxTotal int) *AILimiter {
	return &AILimiter{
		maxGemini: maxGemini,
		maxImagen: maxImagen,
		maxTotal:  maxTotal,
		resetTime: time.Now().Add(24 * time.Hour),
	}
}

// CanUseGemini reports whether another text-generation request fits the budget.
func (rl *AILimiter) CanUseGemini() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.checkReset()

	if rl.maxGemini > 0 && rl.geminiCount >= rl.maxGemini {
		logger.Warn("gemini rate limit reached", "used", rl.geminiCount, "limit", rl.maxGemini)
		return false
	}
	if rl.maxTotal > 0 && rl.totalCount >= rl.maxTotal {
		logger.Warn("total AI rate limit reached", "used", rl.totalCount, "limit", rl.maxTotal)
		return false
	}
	return true
}

// CanUseImagen reports whether another image-generation request fits the budget.
func (rl *AILimiter) CanUseImagen() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.checkReset()

	if rl.maxImagen > 0 && rl.imagenCount >= rl.maxImagen {
		logger.Warn("imagen rate limit reached", "used", rl.imagenCount, "limit", rl.maxImagen)
		return false
	}
	if rl.maxTotal > 0 && rl.totalCount >= rl.maxTotal {
		logger.Warn("total AI rate limit reached", "used", rl.totalCount, "limit", rl.maxTotal)
		return false
	}
	return true
}

// UseGemini records one text-generation request.
func (rl *AILimiter) UseGemini() error {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.checkReset()

	if rl.maxGemini > 0 && rl.geminiCount >= rl.maxGemini {
		return fmt.Errorf("gemini rate limit exceeded")
	}
	if rl.maxTotal > 0 && rl.totalCount >= rl.maxTotal {
		return fmt.Errorf("total AI rate limit exceeded")
	}

	rl.geminiCount++
	rl.totalCount++
	return nil
}

// UseImagen records one image-generation request.
func (rl *AILimiter) UseImagen() error {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.checkReset()

	if rl.maxImagen > 0 && rl.imagenCount >= rl.maxImagen {
		return fmt.Errorf("imagen rate limit exceeded")
	}
	if rl.maxTotal > 0 && rl.totalCount >= rl.maxTotal {
		return fmt.Errorf("total AI rate limit exceeded")
	}

	rl.imagenCount++
	rl.totalCount++
	return nil
}

// Stats returns a snapshot of usage counters.
func (rl *AILimiter) Stats() map[string]interface{} {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	return map[string]interface{}{
		"gemini_used":  rl.geminiCount,
		"gemini_limit": rl.maxGemini,
		"imagen_used":  rl.imagenCount,
		"imagen_limit": rl.maxImagen,
		"total_used":   rl.totalCount,
		"total_limit":  rl.maxTotal,
		"reset_time":   rl.resetTime,
	}
}

func (rl *AILimiter) checkReset() {
	if time.Now().After(rl.resetTime) {
		rl.geminiCount = 0
		rl.imagenCount = 0
		rl.totalCount = 0
		rl.resetTime = time.Now().Add(24 * time.Hour)
	}
}
