package context

import (
	"context"

	"github.com/muhammadheryan/home-service/constant"
	"github.com/muhammadheryan/home-service/model"
)

func GetPrincipal(ctx context.Context) (*model.Principal, bool) {
	v := ctx.Value(constant.PrincipalKey)
	if v == nil {
		return nil, false
	}
	p, ok := v.(*model.Principal)
	return p, ok
}

func WithPrincipal(ctx context.Context, p *model.Principal) context.Context {
	return context.WithValue(ctx, constant.PrincipalKey, p)
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, constant.RequestIDKey, id)
}
