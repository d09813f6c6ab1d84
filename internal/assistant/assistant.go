package assistant

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"womenhub/internal/config"
)

const (
	DemoAdvice = "Demo Mode Response: the AI service is not available right now. Here is some general advice.\n\n" +
		"Health: Focus on a balanced diet rich in iron (spinach, lentils) and calcium. Stay hydrated and aim for 30 mins of exercise daily.\n" +
		"Career: Upskill regularly, network with peers, and don't hesitate to negotiate for your worth."

	TroubleConnecting = "I'm having trouble connecting right now. Please try again later."

	JobsDemo = "Recommended Roles (Demo):\n" +
		"1. Frontend Developer - Matches your technical skills.\n" +
		"2. Data Analyst - Great for your analytical background.\n" +
		"3. Product Manager - Leverages your experience."

	CoursesDemo = "Recommended Path (Demo):\n" +
		"1. Python for Beginners (Udemy) - Great starting point.\n" +
		"2. Google Data Analytics Certificate (Coursera) - Aligns with your interests.\n" +
		"3. Introduction to Web Development (freeCodeCamp)."
)

var errEmpty = errors.New("empty response")

var fallbacks = map[string]struct{}{
	DemoAdvice:        {},
	TroubleConnecting: {},
	JobsDemo:          {},
	CoursesDemo:       {},
}

// IsFallback reports whether text is one of the canned responses.
func IsFallback(text string) bool {
	_, ok := fallbacks[text]
	return ok
}

const (
	ModeLive     = "live"
	ModeFallback = "fallback"

	defaultRole          = "women empowerment"
	recommendationTokens = 200
)

// Assistant wraps a Generator with the fallback contract: every method returns
// usable text and never an error.
type Assistant struct {
	gen         Generator
	logger      *zap.Logger
	maxTokens   int
	temperature float64
	timeout     time.Duration
}

// New returns an assistant. A nil gen means no provider is configured.
func New(gen Generator, cfg config.AI, logger *zap.Logger) *Assistant {
	a := &Assistant{
		gen:         gen,
		logger:      logger.Named("assistant"),
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
	}
	if a.maxTokens <= 0 {
		a.maxTokens = 300
	}
	if a.timeout <= 0 {
		a.timeout = 30 * time.Second
	}
	return a
}

func (a *Assistant) Mode() string {
	if a.gen == nil {
		return ModeFallback
	}
	return ModeLive
}

func (a *Assistant) Model() string {
	if a.gen == nil {
		return ""
	}
	return a.gen.Model()
}

func systemPrompt(role string) string {
	if strings.TrimSpace(role) == "" {
		role = defaultRole
	}
	return "You are a helpful assistant for a women empowerment platform. Context: " + role
}

// generate returns the model text, or the fallback picked by classify when the
// assistant is unconfigured, the call fails, or the answer is empty.
func (a *Assistant) generate(ctx context.Context, op string, p Prompt, classify func(err error) string) string {
	if a.gen == nil {
		return classify(nil)
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := time.Now()
	text, err := a.gen.Generate(ctx, p)
	if err != nil {
		a.logger.Warn("generation failed, using fallback",
			zap.String("op", op),
			zap.String("model", a.gen.Model()),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return classify(err)
	}
	if text == "" {
		a.logger.Warn("empty generation, using fallback", zap.String("op", op))
		return classify(errEmpty)
	}

	a.logger.Debug("generation ok", zap.String("op", op), zap.Duration("elapsed", time.Since(start)))
	return text
}

// Chat answers a free-form message. role describes the persona, for example
// "Career Coach" or "Legal Expert".
func (a *Assistant) Chat(ctx context.Context, message, role string) string {
	p := Prompt{
		System:      systemPrompt(role),
		User:        message,
		MaxTokens:   a.maxTokens,
		Temperature: a.temperature,
	}
	return a.generate(ctx, "chat", p, func(err error) string {
		if err == nil || isQuota(err) {
			return DemoAdvice
		}
		return TroubleConnecting
	})
}

func (a *Assistant) RecommendJobs(ctx context.Context, skills, experience string) string {
	p := Prompt{
		User:        fmt.Sprintf("Suggest 3 jobs for Skills: %s, Exp: %s", skills, experience),
		MaxTokens:   recommendationTokens,
		Temperature: a.temperature,
	}
	return a.generate(ctx, "recommend_jobs", p, func(error) string { return JobsDemo })
}

func (a *Assistant) RecommendCourses(ctx context.Context, interests, level string) string {
	p := Prompt{
		User:        fmt.Sprintf("Suggest 3 courses for Interests: %s, Level: %s", interests, level),
		MaxTokens:   recommendationTokens,
		Temperature: a.temperature,
	}
	return a.generate(ctx, "recommend_courses", p, func(error) string { return CoursesDemo })
}

type Meals struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
	Snacks    string `json:"snacks"`
}

func (m Meals) summary() string {
	return fmt.Sprintf("B: %s L: %s D: %s S: %s", m.Breakfast, m.Lunch, m.Dinner, m.Snacks)
}

type Macros struct {
	Calories int    `json:"calories"`
	Protein  int    `json:"proteinGrams"`
	Carbs    int    `json:"carbsGrams"`
	Fats     int    `json:"fatsGrams"`
	Source   string `json:"source"`
}

// FallbackMacros is a typical day used when no estimate can be produced.
var FallbackMacros = Macros{Calories: 1650, Protein: 90, Carbs: 180, Fats: 60, Source: ModeFallback}

var numberPattern = regexp.MustCompile(`\d+`)

// ParseMacros extracts the first four integers of text as calories, protein,
// carbs and fats.
func ParseMacros(text string) (Macros, bool) {
	nums := numberPattern.FindAllString(text, 4)
	if len(nums) < 4 {
		return Macros{}, false
	}

	var vals [4]int
	for i, n := range nums {
		v, err := strconv.Atoi(n)
		if err != nil {
			return Macros{}, false
		}
		vals[i] = v
	}
	return Macros{Calories: vals[0], Protein: vals[1], Carbs: vals[2], Fats: vals[3], Source: ModeLive}, true
}

// EstimateMacros asks the model for a nutrition estimate of a day of meals.
func (a *Assistant) EstimateMacros(ctx context.Context, meals Meals) Macros {
	if a.gen == nil {
		return FallbackMacros
	}

	prompt := "Analyze these meals: " + meals.summary() + ".\n" +
		"Estimate total: 1. Calories 2. Protein(g) 3. Carbs(g) 4. Fats(g).\n" +
		"Return ONLY 4 numbers separated by commas. Example: 1500, 80, 150, 50."

	text := a.generate(ctx, "estimate_macros", Prompt{
		System:      systemPrompt("Nutritionist"),
		User:        prompt,
		MaxTokens:   a.maxTokens,
		Temperature: a.temperature,
	}, func(error) string { return "" })

	if m, ok := ParseMacros(text); ok {
		return m
	}
	a.logger.Info("macro estimate unparseable, using typical day", zap.String("text", text))
	return FallbackMacros
}
