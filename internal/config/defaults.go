package config

// DefaultHiddenImports lists modules the packaging tool cannot discover on
// its own: the GUI toolkit and its submodules, the speech engines, the
// credential store and the document/markup libraries.
var DefaultHiddenImports = []string{
	"PyQt6",
	"PyQt6.QtCore",
	"PyQt6.QtGui",
	"PyQt6.QtWidgets",
	"PyQt6.sip",
	"pyttsx3",
	"pyttsx3.drivers",
	"pyttsx3.drivers.sapi5",
	"edge_tts",
	"pygame",
	"keyring",
	"keyring.backends",
	"keyring.backends.Windows",
	"docx",
	"lxml",
	"ebooklib",
	"ebooklib.epub",
}

// Default returns the built-in Writer Platform project rooted at dir.
func Default(dir string) *Project {
	return &Project{
		Name:        "WriterPlatform",
		DisplayName: "Writer Platform",
		Dir:         dir,
		EntryPoint:  "main.py",
		Runtime: Runtime{
			Interpreter: "python",
		},
		Environment: Environment{
			Dir:      "venv",
			Manifest: "requirements.txt",
		},
		Icon: Icon{
			Path:      "assets/icon.ico",
			Generator: GeneratorAuto,
			Script:    "create_icon.py",
		},
		Package: Package{
			Tool:          "pyinstaller",
			Module:        "PyInstaller",
			Windowed:      true,
			Layout:        LayoutOneDir,
			AddData:       []string{"assets"},
			HiddenImports: append([]string(nil), DefaultHiddenImports...),
			CollectAll:    []string{"PyQt6"},
			NoConfirm:     true,
			DistDir:       "dist",
			WorkDir:       "build",
		},
	}
}
