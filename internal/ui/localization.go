package ui

import (
	"log"

	golocale "github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyOpenFolder         = "open_folder"
	KeyChangeFolder       = "change_folder"
	KeySelectParentFolder = "select_parent_folder"
	KeyWelcomeTitle       = "welcome_title"
	KeyWelcomeText        = "welcome_text"
	KeyFolders            = "folders"
	KeyFiles              = "files"
	KeyFilesCount         = "files_count"
	KeyLoading            = "loading"
	KeyEmptyFolder        = "empty_folder"
	KeyError              = "error"
	KeyErrorOpeningFile   = "error_opening_file"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyQuit               = "quit"
	KeyLanguage           = "language"
	KeyRestoreLastFolder  = "restore_last_folder"
	KeyMinGroupPrefix     = "min_group_prefix"
	KeyBrowsingSettings   = "browsing_settings"
	KeyInterfaceSettings  = "interface_settings"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeySettingsSaved      = "settings_saved"
)

// Language codes
const (
	LanguageSystem  = "system"
	LanguageEnglish = "en"
)

// supportedLanguages lists language codes with English first, it is the
// matcher's fallback
var supportedLanguages = []string{"en", "ru", "pt"}

// systemLocale is replaced in tests
var systemLocale = golocale.GetLocale

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LanguageEnglish,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" follows the OS locale.
func (l *Localization) SetLanguage(lang string) {
	if lang == LanguageSystem {
		lang = resolveSystemLanguage()
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// resolveSystemLanguage maps the OS locale onto a supported language
func resolveSystemLanguage() string {
	loc, err := systemLocale()
	if err != nil || loc == "" {
		log.Printf("System locale unavailable, using English: %v", err)
		return LanguageEnglish
	}
	return MatchLanguage(loc)
}

// MatchLanguage returns the supported language closest to a BCP 47 tag such
// as "pt-BR", or English when nothing matches
func MatchLanguage(tag string) string {
	requested, err := language.Parse(tag)
	if err != nil {
		return LanguageEnglish
	}

	tags := make([]language.Tag, len(supportedLanguages))
	for i, code := range supportedLanguages {
		tags[i] = language.Make(code)
	}

	_, index, confidence := language.NewMatcher(tags).Match(requested)
	if confidence == language.No {
		return LanguageEnglish
	}
	return supportedLanguages[index]
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[LanguageEnglish]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "File Grouper",
		KeyOpenFolder:         "Open Folder",
		KeyChangeFolder:       "Change Folder",
		KeySelectParentFolder: "Select Parent Folder",
		KeyWelcomeTitle:       "Welcome to File Grouper",
		KeyWelcomeText:        "Organize and view your files by common patterns",
		KeyFolders:            "Folders",
		KeyFiles:              "Files",
		KeyFilesCount:         "%d files",
		KeyLoading:            "Loading...",
		KeyEmptyFolder:        "Nothing here yet 🌵",
		KeyError:              "Error",
		KeyErrorOpeningFile:   "Failed to open file",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyQuit:               "Quit",
		KeyLanguage:           "Language",
		KeyRestoreLastFolder:  "Reopen last folder on start",
		KeyMinGroupPrefix:     "Shared prefix length for grouping",
		KeyBrowsingSettings:   "Browsing",
		KeyInterfaceSettings:  "Interface",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeySettingsSaved:      "Settings saved successfully!",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Группировщик файлов",
		KeyOpenFolder:         "Открыть папку",
		KeyChangeFolder:       "Сменить папку",
		KeySelectParentFolder: "Выбрать родительскую папку",
		KeyWelcomeTitle:       "Добро пожаловать в Группировщик файлов",
		KeyWelcomeText:        "Просматривайте файлы, сгруппированные по общим шаблонам",
		KeyFolders:            "Папки",
		KeyFiles:              "Файлы",
		KeyFilesCount:         "Файлов: %d",
		KeyLoading:            "Загрузка...",
		KeyEmptyFolder:        "Здесь пока пусто 🌵",
		KeyError:              "Ошибка",
		KeyErrorOpeningFile:   "Не удалось открыть файл",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyQuit:               "Выход",
		KeyLanguage:           "Язык",
		KeyRestoreLastFolder:  "Открывать последнюю папку при запуске",
		KeyMinGroupPrefix:     "Длина общего префикса для группировки",
		KeyBrowsingSettings:   "Просмотр",
		KeyInterfaceSettings:  "Интерфейс",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeySettingsSaved:      "Настройки успешно сохранены!",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Agrupador de Arquivos",
		KeyOpenFolder:         "Abrir Pasta",
		KeyChangeFolder:       "Trocar Pasta",
		KeySelectParentFolder: "Selecionar Pasta Principal",
		KeyWelcomeTitle:       "Bem-vindo ao Agrupador de Arquivos",
		KeyWelcomeText:        "Organize e veja seus arquivos por padrões comuns",
		KeyFolders:            "Pastas",
		KeyFiles:              "Arquivos",
		KeyFilesCount:         "%d arquivos",
		KeyLoading:            "Carregando...",
		KeyEmptyFolder:        "Nada aqui ainda 🌵",
		KeyError:              "Erro",
		KeyErrorOpeningFile:   "Falha ao abrir arquivo",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyQuit:               "Sair",
		KeyLanguage:           "Idioma",
		KeyRestoreLastFolder:  "Reabrir a última pasta ao iniciar",
		KeyMinGroupPrefix:     "Tamanho do prefixo comum para agrupar",
		KeyBrowsingSettings:   "Navegação",
		KeyInterfaceSettings:  "Interface",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
	}
}
