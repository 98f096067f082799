package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Server    ServerConfig    `yaml:"server"`
	Mongo     MongoConfig     `yaml:"mongo"`
	Gemini    GeminiConfig    `yaml:"gemini"`
	Segmenter SegmenterConfig `yaml:"segmenter"`
	Keywords  KeywordsConfig  `yaml:"keywords"`
	Retriever RetrieverConfig `yaml:"retriever"`
	QA        QAConfig        `yaml:"qa"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Webpage   WebpageConfig   `yaml:"webpage"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// CORSAllowedOrigins 가 비어 있으면 모든 오리진을 허용한다.
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

type MongoConfig struct {
	URI    string `yaml:"uri"`
	DBName string `yaml:"db_name"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`
}

// SegmenterConfig 는 스크립트 분할 정책을 정의한다.
type SegmenterConfig struct {
	// MaxSegmentLength 는 문단을 문장 단위로 추가 분할하는 길이 임계값이다.
	// 0 이하면 기본값 500을 사용한다. (유효 범위 400~600)
	MaxSegmentLength int `yaml:"max_segment_length"`
}

type KeywordsConfig struct {
	// Strategy 는 "gemini" 또는 "lexical" 이다. 비어 있으면 lexical 을 사용한다.
	Strategy    string `yaml:"strategy"`
	MaxKeywords int    `yaml:"max_keywords"`
}

// RetrieverConfig 는 외부 프로바이더 검색 동작을 정의한다.
type RetrieverConfig struct {
	// Providers 는 우선순위 순서의 프로바이더 이름 목록이다. (동점 처리에 사용)
	Providers []string `yaml:"providers"`
	// MaxCandidates 는 세그먼트당 후보 수이다. 0 이하면 기본값 10. (유효 범위 8~12)
	MaxCandidates int `yaml:"max_candidates"`
	// ProviderTimeoutSeconds 는 프로바이더 호출당 타임아웃이다. 0 이하면 10초.
	ProviderTimeoutSeconds int `yaml:"provider_timeout_seconds"`
	// VideoPriority 가 true 면 영상을 이미지보다 앞에 정렬한다.
	VideoPriority bool `yaml:"video_priority"`
}

type QAConfig struct {
	// GuidelineFile 은 기본 가이드라인을 대체하는 파일 경로이다. (선택)
	GuidelineFile string `yaml:"guideline_file"`
}

type KafkaConfig struct {
	// Brokers 가 비어 있으면 Kafka 대신 인프로세스 버스를 사용한다.
	Brokers string `yaml:"brokers"`
	GroupID string `yaml:"group_id"`
}

type WebpageConfig struct {
	// UseHeadless 가 true 면 링크 모드에서 chromedp 로 렌더링 후 본문을 추출한다.
	UseHeadless bool   `yaml:"use_headless"`
	ChromePath  string `yaml:"chrome_path"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// GeminiAPIKey 는 .env 또는 환경변수에서 읽는다. config.yaml 에는 두지 않는다.
func GeminiAPIKey() string { return os.Getenv("GEMINI_API_KEY") }

// PexelsAPIKey 는 Pexels 검색 API 키이다.
func PexelsAPIKey() string { return os.Getenv("PEXELS_API_KEY") }

// PixabayAPIKey 는 Pixabay 검색 API 키이다.
func PixabayAPIKey() string { return os.Getenv("PIXABAY_API_KEY") }

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
