// Package app wires feeds, trend detection, generation, images, and
// WordPress into the publish pipeline.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hindnews/internal/config"
	"hindnews/internal/gemini"
	"hindnews/internal/images"
	"hindnews/internal/ledger"
	"hindnews/internal/logger"
	"hindnews/internal/metrics"
	"hindnews/internal/ratelimit"
	"hindnews/internal/rss"
	"hindnews/internal/scraper"
	"hindnews/internal/trends"
	"hindnews/internal/wordpress"
)

type App struct {
	cfg      *config.Config
	ledger   *ledger.Ledger
	gemini   *gemini.Client
	selector *images.Selector
	wp       *wordpress.Client
	limiter  *ratelimit.AILimiter

	// publish runs one topic through the pipeline; a seam for tests.
	publish func(ctx context.Context, topic trends.Topic) (int, *imageRetry, error)
}

// imageRetry is a published post still waiting for a featured image.
type imageRetry struct {
	postID   int
	prompt   string
	headline string
	slug     string
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	limiter := ratelimit.New(cfg.MaxGeminiRequests, cfg.MaxImagenRequests, 0)

	geminiClient, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, limiter)
	if err != nil {
		return nil, err
	}

	generator := images.NewGenerator(cfg.GeminiAPIKey, limiter)

	a := &App{
		cfg:      cfg,
		ledger:   ledger.Load(cfg.LedgerPath),
		gemini:   geminiClient,
		selector: images.NewSelector(generator, cfg.PredefinedImageDir),
		wp:       wordpress.NewClient(cfg.WordPressURL, cfg.WordPressUser, cfg.WordPressPassword, cfg.RequestTimeout),
		limiter:  limiter,
	}
	a.publish = a.publishTopic
	return a, nil
}

// LimiterStats exposes the AI request budget counters for monitoring.
func (a *App) LimiterStats() map[string]interface{} {
	if a.limiter == nil {
		return nil
	}
	return a.limiter.Stats()
}

func (a *App) Close() {
	a.gemini.Close()
}

// RunAll publishes exempt topics first, then ranked multi-source
// topics, until the per-run budget is spent.
func (a *App) RunAll(ctx context.Context) error {
	start := time.Now()
	logger.Info("starting full automation run")

	if !a.wp.TestConnection(ctx) {
		return fmt.Errorf("wordpress connection failed, check credentials")
	}

	groups, err := rss.LoadFeeds(a.cfg.FeedsConfigPath)
	if err != nil {
		return fmt.Errorf("load feeds config: %w", err)
	}

	exempt := trends.BuildExempt(rss.FetchExempt(groups, a.cfg.MinTitleLength), a.cfg.ExemptLimit)
	ranked := trends.Detect(rss.FetchAll(groups, a.cfg.MinTitleLength), a.cfg.TopicLimit)

	topics := append(exempt, ranked...)
	if len(topics) == 0 {
		return fmt.Errorf("no trending topics found")
	}
	logger.Info("collected topics", "exempt", len(exempt), "ranked", len(ranked))

	created := a.publishTopics(ctx, topics)
	a.finishRun(ctx, start, created)
	return nil
}

// RunMultiSource publishes only corroborated multi-source topics.
func (a *App) RunMultiSource(ctx context.Context) error {
	start := time.Now()
	logger.Info("starting multi-source automation run")

	if !a.wp.TestConnection(ctx) {
		return fmt.Errorf("wordpress connection failed, check credentials")
	}

	groups, err := rss.LoadFeeds(a.cfg.FeedsConfigPath)
	if err != nil {
		return fmt.Errorf("load feeds config: %w", err)
	}

	topics := trends.Detect(rss.FetchAll(groups, a.cfg.MinTitleLength), a.cfg.TopicLimit)
	if len(topics) == 0 {
		return fmt.Errorf("no multi-source topics found")
	}

	created := a.publishTopics(ctx, topics)
	a.finishRun(ctx, start, created)
	return nil
}

// RunExempt publishes only the exempt single-source groups, meant for
// a more frequent schedule than the full run.
func (a *App) RunExempt(ctx context.Context) error {
	start := time.Now()
	logger.Info("starting exempt-groups automation run")

	if !a.wp.TestConnection(ctx) {
		return fmt.Errorf("wordpress connection failed, check credentials")
	}

	groups, err := rss.LoadFeeds(a.cfg.FeedsConfigPath)
	if err != nil {
		return fmt.Errorf("load feeds config: %w", err)
	}

	topics := trends.BuildExempt(rss.FetchExempt(groups, a.cfg.MinTitleLength), a.cfg.ExemptLimit)
	if len(topics) == 0 {
		return fmt.Errorf("no exempt topics found")
	}

	created := a.publishTopics(ctx, topics)
	a.finishRun(ctx, start, created)
	return nil
}

func (a *App) finishRun(ctx context.Context, start time.Time, created int) {
	if ctx.Err() != nil {
		// Interrupted: the on-disk ledger stays as last flushed
		logger.Warn("run interrupted, skipping ledger save")
	} else if err := a.ledger.Save(); err != nil {
		logger.Error("could not save processed-topics ledger", "error", err)
	}
	metrics.Global.RecordRun(time.Since(start))
	logger.Info("automation run completed", "posts_created", created, "duration", time.Since(start).Round(time.Second))
}

// publishTopics walks the topic list until MaxPostsPerRun posts are
// live. Failed publishes do not consume the budget. Posts that went
// out without a featured image get one retry pass at the end.
func (a *App) publishTopics(ctx context.Context, topics []trends.Topic) int {
	created := 0
	var retries []imageRetry

	for _, topic := range topics {
		if created >= a.cfg.MaxPostsPerRun {
			break
		}
		if ctx.Err() != nil {
			break
		}

		if a.limiter != nil && !a.limiter.CanUseGemini() {
			logger.Warn("gemini request budget exhausted, stopping run early")
			break
		}

		if a.ledger.Contains(topic.Title) {
			logger.Info("skipping already processed topic", "title", topic.Title)
			metrics.Global.AddDuplicateSkipped()
			continue
		}

		postID, retry, err := a.publish(ctx, topic)
		if err != nil {
			logger.Error("failed to publish topic", "title", topic.Title, "error", err)
			metrics.Global.AddPublishFailure()
			continue
		}

		a.ledger.Add(topic.Title)
		metrics.Global.AddPostCreated()
		created++
		logger.Info("published post", "post_id", postID, "title", topic.Title, "category", topic.Category)

		if retry != nil {
			retries = append(retries, *retry)
			metrics.Global.AddImageRetryQueued()
		}

		select {
		case <-ctx.Done():
			return created
		case <-time.After(a.cfg.PostDelay):
		}
	}

	if len(retries) > 0 {
		logger.Info("retrying images for posts published without one", "count", len(retries))
		a.retryQueuedImages(ctx, retries)
	}
	return created
}

// publishTopic runs one topic through generation, image selection, and
// posting. A non-nil imageRetry means the post is live but imageless.
func (a *App) publishTopic(ctx context.Context, topic trends.Topic) (int, *imageRetry, error) {
	log := logger.WithTopic(topic.Title, topic.Category, topic.Sources)
	log.Info("processing topic")

	extraContext := ""
	if a.cfg.ScrapeArticles && len(topic.Links) > 0 {
		articles := scraper.ExtractArticlesInBackground(topic.Links)
		var parts []string
		for _, url := range topic.Links {
			if article, ok := articles[url]; ok {
				parts = append(parts, article.Content)
			}
		}
		extraContext = strings.Join(parts, "\n\n")
		if extraContext == "" {
			log.Warn("no source article could be scraped, generating from title only")
		}
	}

	article, err := a.gemini.GenerateArticle(ctx, topic, extraContext)
	if err != nil {
		return 0, nil, fmt.Errorf("content generation: %w", err)
	}

	cleanedTitle := CleanTitle(article.Headline)
	content := CleanContent(article.Content, cleanedTitle)
	slug := wordpress.Slug(topic.Title)

	categories := article.Categories
	if len(categories) > 1 {
		categories = categories[:1]
	}
	// Exempt groups always publish under their own category
	if topic.Category == "वायरल" || topic.Category == "उत्तर प्रदेश" {
		categories = []string{topic.Category}
	}

	featuredMedia := 0
	imageData, imageSource, err := a.selector.Select(ctx, content, cleanedTitle, article.ImagePrompt)
	if err != nil {
		log.Warn("no image could be selected or generated", "error", err)
	} else {
		if id, upErr := a.uploadFeaturedImage(ctx, imageData, slug, cleanedTitle); upErr != nil {
			log.Warn("featured image upload failed", "error", upErr)
		} else {
			featuredMedia = id
			content += imageAttribution(imageSource)
		}
	}

	author := wordpress.AuthorForCategory(topic.Category)
	postID, err := a.wp.CreatePost(ctx, wordpress.Post{
		Title:         cleanedTitle,
		Content:       content,
		Status:        a.cfg.PostStatus,
		Slug:          slug,
		Categories:    categories,
		Tags:          article.Tags,
		FeaturedMedia: featuredMedia,
		AuthorID:      author.ID,
	})
	if err != nil {
		return 0, nil, err
	}

	var retry *imageRetry
	if featuredMedia == 0 && article.ImagePrompt != "" {
		retry = &imageRetry{postID: postID, prompt: article.ImagePrompt, headline: cleanedTitle, slug: slug}
	}
	return postID, retry, nil
}

func (a *App) uploadFeaturedImage(ctx context.Context, data []byte, slug, title string) (int, error) {
	jpegData, err := images.EncodeJPEG(data)
	if err != nil {
		return 0, fmt.Errorf("encode image: %w", err)
	}

	altText := a.gemini.TranslateTitle(ctx, title)
	id, err := a.wp.UploadImage(ctx, jpegData, slug+"-featured.jpg", altText)
	if err != nil {
		return 0, err
	}
	metrics.Global.AddImageUploaded()
	return id, nil
}

func imageAttribution(source string) string {
	origin := "Google"
	if source == "ai_generated" {
		origin = "AI"
	}
	return fmt.Sprintf("\n\n<p style='text-align: left; font-style: italic; color: #666;'>Image Source: %s</p>", origin)
}

// retryQueuedImages gives this run's imageless posts a second attempt.
func (a *App) retryQueuedImages(ctx context.Context, retries []imageRetry) {
	for _, r := range retries {
		if ctx.Err() != nil {
			return
		}
		logger.Info("retrying image", "post_id", r.postID, "headline", r.headline)

		data, source, err := a.selector.Select(ctx, "", r.headline, r.prompt)
		if err != nil {
			logger.Warn("image retry generation failed", "post_id", r.postID, "error", err)
			continue
		}

		mediaID, err := a.uploadFeaturedImage(ctx, data, r.slug, r.headline)
		if err != nil {
			logger.Warn("image retry upload failed", "post_id", r.postID, "error", err)
			continue
		}

		newContent := ""
		if body, err := a.wp.GetPostContent(ctx, r.postID); err == nil && body != "" {
			newContent = body + imageAttribution(source)
		}
		if err := a.wp.UpdateFeaturedImage(ctx, r.postID, mediaID, newContent); err != nil {
			logger.Error("could not attach retried image", "post_id", r.postID, "error", err)
			continue
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(3 * time.Second):
		}
	}
}

// RetryImages finds recent posts published without a featured image
// and tries to generate one for each.
func (a *App) RetryImages(ctx context.Context, maxPosts int) error {
	logger.Info("starting image retry for existing posts", "max_posts", maxPosts)

	posts, err := a.wp.RecentPosts(ctx, maxPosts)
	if err != nil {
		return fmt.Errorf("list recent posts: %w", err)
	}

	var retries []imageRetry
	for _, post := range posts {
		if post.FeaturedMedia != 0 {
			continue
		}
		retries = append(retries, imageRetry{
			postID:   post.ID,
			prompt:   imagePromptForPost(post),
			headline: post.Title,
			slug:     wordpress.Slug(post.Title),
		})
	}
	if len(retries) == 0 {
		logger.Info("no posts found without featured images")
		return nil
	}

	logger.Info("found posts without featured images", "count", len(retries))
	a.retryQueuedImages(ctx, retries)
	return nil
}

var htmlTagReplacer = strings.NewReplacer("<p>", "", "</p>", "", "<strong>", "", "</strong>", "")

// imagePromptForPost recovers an image prompt from a post: a leaked
// IMAGE_PROMPT: line in the body if one survives, the title otherwise.
func imagePromptForPost(post wordpress.RemotePost) string {
	for _, line := range strings.Split(post.Content, "\n") {
		if idx := strings.Index(line, "IMAGE_PROMPT:"); idx >= 0 {
			if prompt := strings.TrimSpace(line[idx+len("IMAGE_PROMPT:"):]); prompt != "" {
				return prompt
			}
		}
	}

	title := strings.TrimSpace(htmlTagReplacer.Replace(post.Title))
	if title == "" {
		return ""
	}
	if len([]rune(title)) > 100 {
		title = string([]rune(title)[:100])
	}
	return fmt.Sprintf("Professional news photography style image representing: %s", title)
}
