package catalog

import (
	"github.com/sisgea/unispec/internal/declarator"
	"github.com/sisgea/unispec/internal/registry"
	"github.com/sisgea/unispec/internal/schema"
	"github.com/sisgea/unispec/internal/tokens"
)

// Token sets of the ambientes module
var (
	Bloco    = tokens.For("Bloco")
	Ambiente = tokens.For("Ambiente")
)

// AmbientesProvider registers the ambientes module
func AmbientesProvider() *registry.Provider {
	return registry.NewProvider(func(ctx *registry.Context) {
		ctx.Add(BlocoProvider())
		ctx.Add(AmbienteProvider())
	})
}

// BlocoEntity returns the Bloco entity
func BlocoEntity() *schema.Object {
	return schema.Entity(schema.EntityOptions{
		ID:          schema.IDUUID,
		Dated:       true,
		Description: "Bloco",
		Properties: schema.Props(
			schema.P("nome", schema.NewString(schema.Describe("Nome do Bloco."), schema.MinLength(1))),
			schema.P("codigo", schema.NewString(schema.Describe("Código do Bloco."), schema.MinLength(1))),
			schema.P("campus", schema.NewReference(Campus.Entity, schema.Describe("Campus do Bloco."))),
			schema.P("imagemCapa", CoverImage()),
		),
	})
}

// BlocoProvider registers the Bloco entity, its views and its declarator
func BlocoProvider() *registry.Provider {
	set := Bloco
	return registry.NewProvider(func(ctx *registry.Context) {
		entity := BlocoEntity()
		ctx.Add(entity)

		full := ctx.View(schema.From(entity).
			Extends(schema.Patch{Properties: map[string]schema.FieldPatch{
				"campus":     schema.Retarget(Campus.Views.FindOneResult),
				"imagemCapa": schema.Replace(CoverImageView()),
			}}).
			View(set.Entity, "Visão completa de um Bloco."))

		ctx.View(findOneInput(set, full))
		ctx.View(schema.From(full).
			Extends(schema.Patch{PartialOf: set.Entity}).
			Pick(schema.Keys("id", "nome", "codigo", "campus", "imagemCapa", "dateCreated", "dateUpdated", "dateDeleted")).
			View(set.Views.FindOneResult, "Visão FindOne de um Bloco."))

		create := ctx.View(schema.From(full).
			Pick(schema.Keys("nome", "codigo", "campus")).
			Extends(schema.Patch{Properties: map[string]schema.FieldPatch{
				"campus": schema.Retarget(Campus.Views.FindOneInput),
			}}).
			View(set.Views.InputCreate, "Dados de entrada para a criação de um Bloco."))

		// campus is fixed once the bloco exists
		ctx.View(schema.From(create).
			PickAny(schema.Keys("nome", "codigo")).
			Partial().
			View(set.Views.InputUpdate, "Dados de entrada para a atualização de um Bloco."))
		ctx.Add(PaginatedResultView(set.Views.FindAllResult, "Resultados da busca a Blocos.", set.Views.FindOneResult))

		ctx.Add(declarator.Compile(set.Entity, declarator.Operations{
			CRUD: CRUD(set, declarator.F("campus.id", declarator.OpEq)),
			Extra: []declarator.Extra{
				GetCoverImage(set),
				SetCoverImage(set),
			},
		}))
	})
}

// AmbienteEntity returns the Ambiente entity
func AmbienteEntity() *schema.Object {
	return schema.Entity(schema.EntityOptions{
		ID:          schema.IDUUID,
		Dated:       true,
		Description: "Ambiente",
		Properties: schema.Props(
			schema.P("nome", schema.NewString(schema.Describe("Nome do ambiente/sala."), schema.MinLength(1))),
			schema.P("descricao", schema.NewString(schema.Describe("Descrição do ambiente/sala."), schema.Nullable())),
			schema.P("codigo", schema.NewString(schema.Describe("Código do ambiente/sala."))),
			schema.P("capacidade", schema.NewInteger(schema.Describe("Capacidade do ambiente/sala."), schema.Nullable(), schema.IntegerOnly(), schema.Positive())),
			schema.P("tipo", schema.NewString(schema.Describe("Tipo do ambiente/sala. Ex.: sala aula, auditório, laboratório de química."), schema.Nullable())),
			schema.P("bloco", schema.NewReference(Bloco.Entity, schema.Describe("Bloco que o ambiente/sala pertence."))),
			schema.P("imagemCapa", CoverImage()),
		),
	})
}

// AmbienteProvider registers the Ambiente entity, its views and its declarator
func AmbienteProvider() *registry.Provider {
	set := Ambiente
	return registry.NewProvider(func(ctx *registry.Context) {
		entity := AmbienteEntity()
		ctx.Add(entity)

		full := ctx.View(schema.From(entity).
			Extends(schema.Patch{Properties: map[string]schema.FieldPatch{
				"bloco":      schema.Retarget(Bloco.Views.FindOneResult),
				"imagemCapa": schema.Replace(CoverImageView()),
			}}).
			View(set.Entity, "Visão completa de um Ambiente."))

		ctx.View(findOneInput(set, full))
		ctx.View(schema.From(full).
			Extends(schema.Patch{PartialOf: set.Entity}).
			Pick(schema.Keys(
				"id",
				"nome", "descricao", "codigo", "capacidade", "tipo",
				"bloco", "imagemCapa",
				"dateCreated", "dateUpdated", "dateDeleted",
			)).
			View(set.Views.FindOneResult, "Visão FindOne de um Ambiente."))

		create := ctx.View(schema.From(full).
			Pick(schema.Keys("nome", "descricao", "codigo", "capacidade", "tipo", "bloco")).
			Extends(schema.Patch{Properties: map[string]schema.FieldPatch{
				"bloco": schema.Retarget(Bloco.Views.FindOneInput),
			}}).
			View(set.Views.InputCreate, "Dados de entrada para a criação de um Ambiente."))

		ctx.View(inputUpdate(set, create, "Dados de entrada para a atualização de um Ambiente."))
		ctx.Add(PaginatedResultView(set.Views.FindAllResult, "Resultados da busca a Ambientes.", set.Views.FindOneResult))

		ctx.Add(declarator.Compile(set.Entity, declarator.Operations{
			CRUD: CRUD(set,
				declarator.F("bloco.id", declarator.OpEq),
				declarator.F("bloco.campus.id", declarator.OpEq),
			),
			Extra: []declarator.Extra{
				GetCoverImage(set),
				SetCoverImage(set),
			},
		}))
	})
}
