package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys used by web pages.
const (
	KeyLayoutTitle = "layout.title"
	KeyNavHome     = "nav.home"
	KeyNavCourses  = "nav.courses"
	KeyNavProfile  = "nav.profile"

	KeyProfileTitle         = "profile.title"
	KeyProfileSubtitle      = "profile.subtitle"
	KeyProfileLoading       = "profile.loading"
	KeyProfileLoginRequired = "profile.login_required"
	KeyProfileGoToLogin     = "profile.go_to_login"
	KeyProfileLoadNoScript  = "profile.load_noscript"
	KeyProfileTabInterests  = "profile.tab.interests"
	KeyProfileTabAccount    = "profile.tab.account"

	KeyInterestsHeading          = "profile.interests.heading"
	KeyInterestsSubtitle         = "profile.interests.subtitle"
	KeyInterestsSave             = "profile.interests.save"
	KeyInterestsSaving           = "profile.interests.saving"
	KeyInterestsSaved            = "profile.interests.saved"
	KeyInterestsSaveFailed       = "profile.interests.save_failed"
	KeyInterestsSaveError        = "profile.interests.save_error"
	KeyInterestsLoginFirst       = "profile.interests.login_first"
	KeyInterestsThrottled        = "profile.interests.throttled"
	KeyInterestsInvalidSelection = "profile.interests.invalid_selection"
	KeyInterestsEmpty            = "profile.interests.empty"
	KeyDegradedCatalog           = "profile.degraded.catalog"
	KeyDegradedSelection         = "profile.degraded.selection"

	KeyAccountHeading  = "profile.account.heading"
	KeyAccountUsername = "profile.account.username"
	KeyAccountEmail    = "profile.account.email"
	KeyAccountRole     = "profile.account.role"

	KeyErrorNotFound    = "error.not_found"
	KeyErrorUnavailable = "error.unavailable"
	KeyErrorInternal    = "error.internal"
)

func init() {
	setAll(language.AmericanEnglish, map[string]string{
		KeyLayoutTitle: "%s | Vinyl Courses",
		KeyNavHome:     "Home",
		KeyNavCourses:  "Courses",
		KeyNavProfile:  "Profile",

		KeyProfileTitle:         "My Profile",
		KeyProfileSubtitle:      "Manage your interests and preferences",
		KeyProfileLoading:       "Loading...",
		KeyProfileLoginRequired: "Please login to view your profile",
		KeyProfileGoToLogin:     "Go to Login",
		KeyProfileLoadNoScript:  "Open your profile",
		KeyProfileTabInterests:  "Interests",
		KeyProfileTabAccount:    "Account Info",

		KeyInterestsHeading:          "Select Your Interests",
		KeyInterestsSubtitle:         "Choose your interests to get personalized course recommendations",
		KeyInterestsSave:             "Save Interests",
		KeyInterestsSaving:           "Saving...",
		KeyInterestsSaved:            "Interests saved successfully!",
		KeyInterestsSaveFailed:       "Failed to save interests",
		KeyInterestsSaveError:        "Error saving interests. Please try again.",
		KeyInterestsLoginFirst:       "Please login first",
		KeyInterestsThrottled:        "Too many save attempts. Please wait a moment.",
		KeyInterestsInvalidSelection: "Your selection could not be read. Please try again.",
		KeyInterestsEmpty:            "No interests are available yet.",
		KeyDegradedCatalog:           "Interests are unavailable right now.",
		KeyDegradedSelection:         "Your saved interests could not be loaded.",

		KeyAccountHeading:  "Account Information",
		KeyAccountUsername: "Username",
		KeyAccountEmail:    "Email",
		KeyAccountRole:     "Role",

		KeyErrorNotFound:    "Page not found",
		KeyErrorUnavailable: "Service unavailable",
		KeyErrorInternal:    "Something went wrong",

		"language.en-US": "English",
		"language.pt-BR": "Português (Brasil)",
	})

	setAll(language.BrazilianPortuguese, map[string]string{
		KeyLayoutTitle: "%s | Vinyl Courses",
		KeyNavHome:     "Início",
		KeyNavCourses:  "Cursos",
		KeyNavProfile:  "Perfil",

		KeyProfileTitle:         "Meu Perfil",
		KeyProfileSubtitle:      "Gerencie seus interesses e preferências",
		KeyProfileLoading:       "Carregando...",
		KeyProfileLoginRequired: "Faça login para ver seu perfil",
		KeyProfileGoToLogin:     "Ir para o login",
		KeyProfileLoadNoScript:  "Abrir seu perfil",
		KeyProfileTabInterests:  "Interesses",
		KeyProfileTabAccount:    "Dados da conta",

		KeyInterestsHeading:          "Selecione seus interesses",
		KeyInterestsSubtitle:         "Escolha seus interesses para receber recomendações de cursos personalizadas",
		KeyInterestsSave:             "Salvar interesses",
		KeyInterestsSaving:           "Salvando...",
		KeyInterestsSaved:            "Interesses salvos com sucesso!",
		KeyInterestsSaveFailed:       "Não foi possível salvar os interesses",
		KeyInterestsSaveError:        "Erro ao salvar interesses. Tente novamente.",
		KeyInterestsLoginFirst:       "Faça login primeiro",
		KeyInterestsThrottled:        "Muitas tentativas. Aguarde um momento.",
		KeyInterestsInvalidSelection: "Não foi possível ler sua seleção. Tente novamente.",
		KeyInterestsEmpty:            "Ainda não há interesses disponíveis.",
		KeyDegradedCatalog:           "Os interesses estão indisponíveis no momento.",
		KeyDegradedSelection:         "Não foi possível carregar seus interesses salvos.",

		KeyAccountHeading:  "Informações da conta",
		KeyAccountUsername: "Usuário",
		KeyAccountEmail:    "E-mail",
		KeyAccountRole:     "Função",

		KeyErrorNotFound:    "Página não encontrada",
		KeyErrorUnavailable: "Serviço indisponível",
		KeyErrorInternal:    "Algo deu errado",

		"language.en-US": "English",
		"language.pt-BR": "Português (Brasil)",
	})
}

func setAll(tag language.Tag, entries map[string]string) {
	for key, value := range entries {
		if err := message.SetString(tag, key, value); err != nil {
			panic(err)
		}
	}
}
