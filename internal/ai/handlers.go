package ai

import (
	"fmt"

	"github.com/gotomicro/ego/core/econf"
	"github.com/pofo-ai/pofo/internal/ai/internal/service/llm/handler"
	"github.com/pofo-ai/pofo/internal/ai/internal/service/llm/handler/log"
	"github.com/pofo-ai/pofo/internal/ai/internal/service/llm/handler/platform/gemini"
	"github.com/pofo-ai/pofo/internal/ai/internal/service/llm/handler/platform/zhipu"
	"github.com/pofo-ai/pofo/internal/ai/internal/service/llm/handler/prompt"
	"github.com/pofo-ai/pofo/internal/ai/internal/service/llm/handler/record"
)

type llmConfig struct {
	Platform string `yaml:"platform"`
	APIKey   string `yaml:"apikey"`
	Model    string `yaml:"model"`
}

func loadLLMConfig() llmConfig {
	var cfg llmConfig
	err := econf.UnmarshalKey("llm", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

// InitPlatformHandler 설정의 llm.platform 으로 출구 플랫폼을 고른다.
func InitPlatformHandler() handler.Handler {
	cfg := loadLLMConfig()
	switch cfg.Platform {
	case "zhipu":
		h, err := zhipu.NewHandler(cfg.APIKey)
		if err != nil {
			panic(err)
		}
		return h
	case "gemini", "":
		return gemini.NewHandler(cfg.APIKey)
	default:
		panic(fmt.Sprintf("알 수 없는 llm 플랫폼: %s", cfg.Platform))
	}
}

func InitPromptBuilder() *prompt.HandlerBuilder {
	cfg := loadLLMConfig()
	return prompt.NewHandler(cfg.Model)
}

// InitCommonHandlers 순서 주의: log -> prompt -> record -> platform.
// record 는 prompt 가 채운 모델명을 봐야 해서 prompt 뒤에 온다.
func InitCommonHandlers(log *log.HandlerBuilder,
	prompt *prompt.HandlerBuilder,
	record *record.HandlerBuilder) []handler.Builder {
	return []handler.Builder{log, prompt, record}
}

func InitRootHandler(common []handler.Builder) handler.Handler {
	return handler.NewCompositionHandler(common, InitPlatformHandler())
}
