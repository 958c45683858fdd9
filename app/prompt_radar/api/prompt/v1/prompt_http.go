package v1

import (
	context "context"

	http "github.com/go-kratos/kratos/v2/transport/http"
)

const OperationPromptIndex = "/prompt.v1.Prompt/Index"
const OperationPromptHealth = "/prompt.v1.Prompt/Health"
const OperationPromptListStrategies = "/prompt.v1.Prompt/ListStrategies"
const OperationPromptAnalyze = "/prompt.v1.Prompt/Analyze"
const OperationPromptGeneratePrompts = "/prompt.v1.Prompt/GeneratePrompts"
const OperationPromptPipeline = "/prompt.v1.Prompt/Pipeline"
const OperationPromptFinalPrompt = "/prompt.v1.Prompt/FinalPrompt"

type PromptHTTPServer interface {
	Index(context.Context, *IndexRequest) (*IndexReply, error)
	Health(context.Context, *HealthRequest) (*HealthReply, error)
	ListStrategies(context.Context, *ListStrategiesRequest) (*ListStrategiesReply, error)
	Analyze(context.Context, *AnalyzeRequest) (*AnalyzeReply, error)
	GeneratePrompts(context.Context, *GeneratePromptsRequest) (*GeneratePromptsReply, error)
	Pipeline(context.Context, *PipelineRequest) (*PipelineReply, error)
	FinalPrompt(context.Context, *FinalPromptRequest) (*FinalPromptReply, error)
}

func RegisterPromptHTTPServer(s *http.Server, srv PromptHTTPServer) {
	r := s.Route("/")
	r.GET("/", _Prompt_Index0_HTTP_Handler(srv))
	r.GET("/health", _Prompt_Health0_HTTP_Handler(srv))
	r.GET("/api/strategies", _Prompt_ListStrategies0_HTTP_Handler(srv))
	r.POST("/api/analyze", _Prompt_Analyze0_HTTP_Handler(srv))
	r.POST("/api/generate-prompts", _Prompt_GeneratePrompts0_HTTP_Handler(srv))
	r.POST("/api/pipeline", _Prompt_Pipeline0_HTTP_Handler(srv))
	r.POST("/api/final-prompt", _Prompt_FinalPrompt0_HTTP_Handler(srv))
}

func _Prompt_Index0_HTTP_Handler(srv PromptHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in IndexRequest
		http.SetOperation(ctx, OperationPromptIndex)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.Index(ctx, req.(*IndexRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*IndexReply)
		return ctx.Result(200, reply)
	}
}

func _Prompt_Health0_HTTP_Handler(srv PromptHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in HealthRequest
		http.SetOperation(ctx, OperationPromptHealth)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.Health(ctx, req.(*HealthRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*HealthReply)
		return ctx.Result(200, reply)
	}
}

func _Prompt_ListStrategies0_HTTP_Handler(srv PromptHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ListStrategiesRequest
		http.SetOperation(ctx, OperationPromptListStrategies)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListStrategies(ctx, req.(*ListStrategiesRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*ListStrategiesReply)
		return ctx.Result(200, reply)
	}
}

func _Prompt_Analyze0_HTTP_Handler(srv PromptHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in AnalyzeRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationPromptAnalyze)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.Analyze(ctx, req.(*AnalyzeRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*AnalyzeReply)
		return ctx.Result(200, reply)
	}
}

func _Prompt_GeneratePrompts0_HTTP_Handler(srv PromptHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in GeneratePromptsRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationPromptGeneratePrompts)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.GeneratePrompts(ctx, req.(*GeneratePromptsRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*GeneratePromptsReply)
		return ctx.Result(200, reply)
	}
}

func _Prompt_Pipeline0_HTTP_Handler(srv PromptHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in PipelineRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationPromptPipeline)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.Pipeline(ctx, req.(*PipelineRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*PipelineReply)
		return ctx.Result(200, reply)
	}
}

func _Prompt_FinalPrompt0_HTTP_Handler(srv PromptHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in FinalPromptRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationPromptFinalPrompt)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.FinalPrompt(ctx, req.(*FinalPromptRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*FinalPromptReply)
		return ctx.Result(200, reply)
	}
}
