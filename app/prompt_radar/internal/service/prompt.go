package service

import (
	"context"
	"errors"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"

	pb "github.com/iWorld-y/prompt_radar/app/prompt_radar/api/prompt/v1"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/internal/biz"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/prompt"
)

// ProviderSet 服务层 Provider 集合
var ProviderSet = wire.NewSet(NewPromptService)

// Version 服务版本，由 main 在启动时写入
var Version = "1.0.0"

// 错误详情前缀
const (
	prefixAnalyze  = "분석 실패"
	prefixGenerate = "프롬프트 생성 실패"
	prefixPipeline = "파이프라인 실패"
)

var _ pb.PromptHTTPServer = (*PromptService)(nil)

type PromptService struct {
	uc  *biz.PipelineUseCase
	log *log.Helper
}

func NewPromptService(uc *biz.PipelineUseCase, logger log.Logger) *PromptService {
	return &PromptService{
		uc:  uc,
		log: log.NewHelper(logger),
	}
}

func (s *PromptService) Index(ctx context.Context, req *pb.IndexRequest) (*pb.IndexReply, error) {
	return &pb.IndexReply{
		Message: "프롬프트 엔지니어링 자동화 API",
		Version: Version,
		Endpoints: map[string]string{
			"analyze":          "/api/analyze",
			"generate_prompts": "/api/generate-prompts",
			"full_pipeline":    "/api/pipeline",
			"final_prompt":     "/api/final-prompt",
			"strategies":       "/api/strategies",
		},
	}, nil
}

func (s *PromptService) Health(ctx context.Context, req *pb.HealthRequest) (*pb.HealthReply, error) {
	return &pb.HealthReply{Status: "healthy"}, nil
}

func (s *PromptService) ListStrategies(ctx context.Context, req *pb.ListStrategiesRequest) (*pb.ListStrategiesReply, error) {
	return &pb.ListStrategiesReply{Strategies: s.uc.Strategies()}, nil
}

func (s *PromptService) Analyze(ctx context.Context, req *pb.AnalyzeRequest) (*pb.AnalyzeReply, error) {
	reply, err := s.analyze(ctx, req)
	if err != nil {
		return nil, s.fail(ctx, prefixAnalyze, err)
	}
	return reply, nil
}

func (s *PromptService) GeneratePrompts(ctx context.Context, req *pb.GeneratePromptsRequest) (*pb.GeneratePromptsReply, error) {
	reply, err := s.generate(ctx, req)
	if err != nil {
		return nil, s.fail(ctx, prefixGenerate, err)
	}
	return reply, nil
}

func (s *PromptService) Pipeline(ctx context.Context, req *pb.PipelineRequest) (*pb.PipelineReply, error) {
	analysis, err := s.analyze(ctx, req)
	if err != nil {
		return nil, s.fail(ctx, prefixPipeline, err)
	}
	prompts, err := s.generate(ctx, analysis)
	if err != nil {
		return nil, s.fail(ctx, prefixPipeline, err)
	}
	return &pb.PipelineReply{
		Analysis: analysis,
		Prompts:  prompts,
		Status:   "success",
	}, nil
}

func (s *PromptService) FinalPrompt(ctx context.Context, req *pb.FinalPromptRequest) (*pb.FinalPromptReply, error) {
	fp, err := s.uc.Finalize(ctx, req.StrategyType, req.Query, req.Intent, req.Trends)
	if err != nil {
		return nil, s.fail(ctx, prefixGenerate, err)
	}
	return &pb.FinalPromptReply{
		SelectedStrategy: fp.SelectedStrategy,
		FinalPrompt:      fp.FinalPrompt,
		Metadata:         fp.Metadata,
	}, nil
}

func (s *PromptService) analyze(ctx context.Context, req *pb.AnalyzeRequest) (*pb.AnalyzeReply, error) {
	a, err := s.uc.Analyze(ctx, req.Query)
	if err != nil {
		return nil, err
	}
	return &pb.AnalyzeReply{
		Query:               a.Query,
		Intent:              a.Intent,
		Trends:              a.Trends,
		ConfirmationMessage: a.ConfirmationMessage,
	}, nil
}

func (s *PromptService) generate(ctx context.Context, req *pb.GeneratePromptsRequest) (*pb.GeneratePromptsReply, error) {
	p, err := s.uc.GeneratePrompts(ctx, req.Query, req.Intent, req.Trends)
	if err != nil {
		return nil, err
	}
	return &pb.GeneratePromptsReply{
		Prompts:          p.Generated,
		SelectionMessage: p.SelectionMessage,
	}, nil
}

// fail 将业务错误转换为 kratos 错误，客户端输入问题返回 400，其余返回 500
func (s *PromptService) fail(ctx context.Context, prefix string, err error) error {
	msg := prefix + ": " + err.Error()
	if errors.Is(err, prompt.ErrUnknownStrategy) || errors.Is(err, biz.ErrInvalidIntent) {
		return kerrors.BadRequest("INVALID_ARGUMENT", msg)
	}
	s.log.WithContext(ctx).Errorf("%s", msg)
	return kerrors.InternalServer("INTERNAL", msg).WithCause(err)
}
