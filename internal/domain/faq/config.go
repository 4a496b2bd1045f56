package faq

// Config holds runtime knobs for the FAQ service.
type Config struct {
	Weights Weights
	// MinConfidence is the score an answer must strictly exceed.
	MinConfidence float64
	FallbackZh    string
	FallbackJa    string
}

const (
	defaultFallbackZh = "抱歉，我无法回答您的问题。请尝试使用不同的表述，或通过官方渠道联系我们。"
	defaultFallbackJa = "申し訳ありませんが、お問い合わせの内容に対する回答が見つかりませんでした。別の言い方で質問してみるか、公式チャンネルからお問い合わせください。"
)

// DefaultConfig returns the reference weights, a zero threshold and the stock fallback messages.
func DefaultConfig() Config {
	return Config{
		Weights:    DefaultWeights(),
		FallbackZh: defaultFallbackZh,
		FallbackJa: defaultFallbackJa,
	}
}

func (c Config) fallback(lang Language) string {
	if lang == LanguageJa {
		if c.FallbackJa != "" {
			return c.FallbackJa
		}
		return defaultFallbackJa
	}
	if c.FallbackZh != "" {
		return c.FallbackZh
	}
	return defaultFallbackZh
}
