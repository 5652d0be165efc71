package catalog

import (
	"github.com/sisgea/unispec/internal/declarator"
	"github.com/sisgea/unispec/internal/registry"
	"github.com/sisgea/unispec/internal/schema"
	"github.com/sisgea/unispec/internal/tokens"
)

// Usuario is the token set of the user entity
var Usuario = tokens.For("Usuario")

// AutenticacaoProvider registers the autenticacao module
func AutenticacaoProvider() *registry.Provider {
	return registry.NewProvider(func(ctx *registry.Context) {
		ctx.Add(UsuarioProvider())
	})
}

// UsuarioEntity returns the Usuario entity
func UsuarioEntity() *schema.Object {
	return schema.Entity(schema.EntityOptions{
		ID:          schema.IDUUID,
		Dated:       true,
		Description: "Usuario",
		Properties: schema.Props(
			schema.P("nome", schema.NewString(schema.Describe("Nome do usuário."), schema.MinLength(1))),
			schema.P("matriculaSiape", schema.NewString(schema.Describe("Matrícula Siape do usuário."), schema.MinLength(1))),
			schema.P("email", schema.NewString(schema.WithFormat(schema.FormatEmail), schema.Describe("E-mail do usuário."))),
			schema.P("isSuperUser", schema.NewBoolean(schema.Describe("Indentifica é um super usuário."))),
			schema.P("imagemCapa", CoverImage()),
			schema.P("imagemPerfil", ProfileImage()),
			schema.P("vinculosAtivos", schema.NewArray(
				schema.NewReference(Vinculo.Entity, schema.Describe("Vínculos ativos do Usuário.")),
				schema.Describe("Vínculos ativos do Usuário."),
			)),
		),
	})
}

// UsuarioProvider registers the Usuario entity, its views and its declarator
func UsuarioProvider() *registry.Provider {
	set := Usuario
	return registry.NewProvider(func(ctx *registry.Context) {
		entity := UsuarioEntity()
		ctx.Add(entity)

		full := ctx.View(schema.From(entity).
			Extends(schema.Patch{Properties: map[string]schema.FieldPatch{
				"imagemCapa":     schema.Replace(CoverImageView()),
				"imagemPerfil":   schema.Replace(ProfileImageView()),
				"vinculosAtivos": {Items: schema.Ptr(schema.Retarget(Vinculo.Views.FindOneResult))},
			}}).
			View(set.Entity, "Visão completa de um Usuário."))

		ctx.View(findOneInput(set, full))
		ctx.View(schema.From(full).
			Extends(schema.Patch{PartialOf: set.Entity}).
			Pick(schema.Keys(
				"id",
				"nome", "matriculaSiape", "email", "isSuperUser",
				"imagemCapa", "imagemPerfil", "vinculosAtivos",
				"dateCreated", "dateUpdated", "dateDeleted",
			)).
			View(set.Views.FindOneResult, "Visão FindOne de um Usuário."))

		create := ctx.View(schema.From(full).
			Pick(schema.Keys("nome", "matriculaSiape", "email")).
			View(set.Views.InputCreate, "Dados de entrada para a criação de um Usuario."))

		ctx.View(inputUpdate(set, create, "Dados de entrada para a atualização de um Usuario."))
		ctx.Add(PaginatedResultView(set.Views.FindAllResult, "Resultados da busca a Usuários.", set.Views.FindOneResult))

		ctx.Add(declarator.Compile(set.Entity, declarator.Operations{
			CRUD: CRUD(set),
			Extra: []declarator.Extra{
				GetCoverImage(set),
				SetCoverImage(set),
				GetProfileImage(set),
				SetProfileImage(set),
			},
		}))
	})
}
