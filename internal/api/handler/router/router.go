// Package router embrulha o httprouter por trás de uma tabela declarativa de
// rotas. Cada grupo de rotas da API (insights, datasets, auth, retenção) é
// montado no pacote handler e registrado aqui de uma vez via WithRoutes.
package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

var (
	// WithRoutes registra um grupo de rotas na construção do router.
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}
)

// Route descreve uma entrada da tabela: caminho, método, handler e os
// middlewares aplicados somente a esta rota.
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

func New(configs ...ConfigRouter) Router {
	router := &Router{
		router: httprouter.New(),
	}

	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registra as rotas com seus middlewares específicos.
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		var handler http.Handler = route.Handler

		// Do último para o primeiro: o primeiro da lista fica mais externo.
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			middleware := route.Middlewares[i]
			handler = middleware(handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
	}
}
