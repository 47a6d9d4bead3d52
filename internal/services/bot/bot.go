// Package bot runs the Telegram side of the mini app: a single /start
// command that replies with the button opening the web app.
package bot

import (
	"time"

	tele "gopkg.in/telebot.v3"
)

// Bot wraps the long-polling Telegram bot.
type Bot struct {
	bot       *tele.Bot
	webAppURL string
}

// Option configures a Bot.
type Option func(*tele.Settings)

// WithOffline skips token verification against the Telegram API. Used in
// tests.
func WithOffline() Option {
	return func(s *tele.Settings) {
		s.Offline = true
	}
}

// New creates the bot. The token must be valid; the web app URL is what the
// /start button opens.
func New(token, webAppURL string, opts ...Option) (*Bot, error) {
	settings := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	for _, opt := range opts {
		opt(&settings)
	}

	b, err := tele.NewBot(settings)
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		bot:       b,
		webAppURL: webAppURL,
	}
	b.Handle("/start", bot.handleStart)

	return bot, nil
}

func (b *Bot) handleStart(c tele.Context) error {
	markup := &tele.ReplyMarkup{}
	open := markup.WebApp("Apri Lettore RSS", &tele.WebApp{URL: b.webAppURL})
	markup.Inline(markup.Row(open))

	return c.Send("Benvenuto! Premi il pulsante qui sotto per aprire la Mini App.", markup)
}

// Start begins long polling. It blocks until Stop is called.
func (b *Bot) Start() {
	b.bot.Start()
}

// Stop ends long polling.
func (b *Bot) Stop() {
	b.bot.Stop()
}
