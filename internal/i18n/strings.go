package i18n

// Key identifies a display string.
type Key string

const (
	Online             Key = "online"
	Offline            Key = "offline"
	SearchPlaceholder  Key = "searchPlaceholder"
	SortBy             Key = "sortBy"
	SortByName         Key = "sortByName"
	SortByID           Key = "sortById"
	SortByBranch       Key = "sortByBranch"
	ScanQR             Key = "scanQR"
	Scanning           Key = "scanning"
	Bookmark           Key = "bookmark"
	RemoveBookmark     Key = "removeBookmark"
	BookmarkAdded      Key = "bookmarkAdded"
	BookmarkRemoved    Key = "bookmarkRemoved"
	LoadMore           Key = "loadMore"
	NoEquipment        Key = "noEquipment"
	EquipmentNotFound  Key = "equipmentNotFound"
	TaskHistory        Key = "taskHistory"
	NoHistory          Key = "noHistory"
	Back               Key = "back"
	Cancel             Key = "cancel"
	Done               Key = "done"
	Language           Key = "language"
	Menu               Key = "menu"
	PreStartCheckTitle Key = "preStartCheckTitle"
	ItemsCompleted     Key = "itemsCompleted"
	Continue           Key = "continue"
	PleaseCompleteAll  Key = "pleaseCompleteAll"
	AddComments        Key = "addComments"
	Photos             Key = "photos"
	AddPhoto           Key = "addPhoto"
	StatusPending      Key = "statusPending"
	StatusOK           Key = "statusOk"
	StatusDefect       Key = "statusDefect"
	RaiseWorkRequest   Key = "raiseWorkRequest"
	RaisingWorkRequest Key = "raisingWorkRequest"
	WorkRequestRaised  Key = "workRequestRaised"
	OfflineRequestAdd  Key = "offlineRequestAdded"
	WorkRequestFailed  Key = "workRequestFailed"
	IncompleteWR       Key = "incompleteWorkRequest"
	IncompleteWRMsg    Key = "incompleteWorkRequestMessage"
	GoBack             Key = "goBack"
	Proceed            Key = "proceed"
	IncompleteDefects  Key = "incompleteDefectDetails"
	IncompleteDefMsg   Key = "incompleteDefectDetailsMessage"
	CompletionTitle    Key = "completionTitle"
	Hours              Key = "hours"
	Minutes            Key = "minutes"
	Notes              Key = "notes"
	Signature          Key = "signature"
	Submit             Key = "submit"
	PreStartSaved      Key = "preStartSaved"
	QueueTitle         Key = "queueTitle"
	Queued             Key = "queued"
	Sent               Key = "sent"
	NothingQueued      Key = "nothingQueued"
	NothingSent        Key = "nothingSent"
	MarkComplete       Key = "markComplete"
	CompletedBy        Key = "completedBy"
	PriorityLabel      Key = "priority"
)

var catalog = map[string]map[Key]string{
	"en": {
		Online:             "Online",
		Offline:            "Offline",
		SearchPlaceholder:  "Search...",
		SortBy:             "Sort by:",
		SortByName:         "Name",
		SortByID:           "ID",
		SortByBranch:       "Branch",
		ScanQR:             "Scan QR Code",
		Scanning:           "Scanning...",
		Bookmark:           "Bookmark",
		RemoveBookmark:     "Remove from Bookmarks",
		BookmarkAdded:      "%s bookmarked",
		BookmarkRemoved:    "%s removed from bookmarks",
		LoadMore:           "Load more",
		NoEquipment:        "No equipment matches your search",
		EquipmentNotFound:  "No equipment with id %s",
		TaskHistory:        "Task History",
		NoHistory:          "No completed pre-start checks yet",
		Back:               "Back",
		Cancel:             "Cancel",
		Done:               "Done",
		Language:           "Language",
		Menu:               "Menu",
		PreStartCheckTitle: "Pre-start check",
		ItemsCompleted:     "items completed",
		Continue:           "Continue",
		PleaseCompleteAll:  "Please complete all checklist items",
		AddComments:        "Add Comments (Optional)",
		Photos:             "Photos",
		AddPhoto:           "Add photo",
		StatusPending:      "Pending",
		StatusOK:           "OK",
		StatusDefect:       "Defect",
		RaiseWorkRequest:   "Raise Work Request",
		RaisingWorkRequest: "Raising Work Request...",
		WorkRequestRaised:  "Work Request Raised",
		OfflineRequestAdd:  "Offline: Request Added to Queue",
		WorkRequestFailed:  "Work request failed, try again",
		IncompleteWR:       "Incomplete Work Request",
		IncompleteWRMsg:    "You have not added any comments or photos for this work request. Do you want to proceed anyway?",
		GoBack:             "Go Back",
		Proceed:            "Proceed",
		IncompleteDefects:  "Incomplete Defect Details",
		IncompleteDefMsg:   "Some defects don't have comments or photos. Do you want to proceed anyway?",
		CompletionTitle:    "Complete pre-start check",
		Hours:              "Hours",
		Minutes:            "Minutes",
		Notes:              "Notes",
		Signature:          "Signature",
		Submit:             "Submit",
		PreStartSaved:      "Pre-start check for %s saved",
		QueueTitle:         "Work Request Queue",
		Queued:             "Queued",
		Sent:               "Sent",
		NothingQueued:      "Nothing waiting to be sent",
		NothingSent:        "No sent work requests",
		MarkComplete:       "Mark complete",
		CompletedBy:        "Completed by",
		PriorityLabel:      "Priority",
	},
	"es": {
		Online:             "En línea",
		Offline:            "Desconectado",
		SearchPlaceholder:  "Buscar...",
		SortBy:             "Ordenar por:",
		SortByName:         "Nombre",
		SortByID:           "ID",
		SortByBranch:       "Sucursal",
		ScanQR:             "Escanear Código QR",
		Bookmark:           "Marcador",
		RemoveBookmark:     "Quitar de Marcadores",
		BookmarkAdded:      "%s añadido a marcadores",
		BookmarkRemoved:    "%s quitado de marcadores",
		TaskHistory:        "Historial de Tareas",
		Back:               "Atrás",
		Cancel:             "Cancelar",
		Done:               "Hecho",
		PreStartCheckTitle: "Verificación previa",
		ItemsCompleted:     "elementos completados",
		Continue:           "Continuar",
		PleaseCompleteAll:  "Por favor complete todos los elementos de la lista",
		AddComments:        "Agregar Comentarios (Opcional)",
		Photos:             "Fotos",
		RaiseWorkRequest:   "Crear Solicitud de Trabajo",
		RaisingWorkRequest: "Creando Solicitud de Trabajo...",
		WorkRequestRaised:  "Solicitud de Trabajo Creada",
		OfflineRequestAdd:  "Sin conexión: Solicitud Agregada a la Cola",
		IncompleteWR:       "Solicitud de Trabajo Incompleta",
		IncompleteWRMsg:    "No has agregado comentarios o fotos para esta solicitud de trabajo. ¿Quieres proceder de todos modos?",
		GoBack:             "Regresar",
		Proceed:            "Proceder",
		IncompleteDefects:  "Detalles de Defecto Incompletos",
		IncompleteDefMsg:   "Algunos defectos no tienen comentarios o fotos. ¿Quieres proceder de todos modos?",
	},
	"fr": {
		Online:             "En ligne",
		Offline:            "Hors ligne",
		SearchPlaceholder:  "Rechercher...",
		SortBy:             "Trier par:",
		SortByName:         "Nom",
		SortByID:           "ID",
		SortByBranch:       "Branche",
		ScanQR:             "Scanner le Code QR",
		Bookmark:           "Signet",
		RemoveBookmark:     "Retirer des Signets",
		BookmarkAdded:      "%s ajouté aux signets",
		BookmarkRemoved:    "%s retiré des signets",
		TaskHistory:        "Historique des Tâches",
		Back:               "Retour",
		Cancel:             "Annuler",
		Done:               "Terminé",
		PreStartCheckTitle: "Vérification pré-démarrage",
		ItemsCompleted:     "éléments terminés",
		Continue:           "Continuer",
		PleaseCompleteAll:  "Veuillez compléter tous les éléments de la liste",
		AddComments:        "Ajouter des Commentaires (Optionnel)",
		Photos:             "Photos",
		RaiseWorkRequest:   "Créer une Demande de Travail",
		RaisingWorkRequest: "Création de la Demande de Travail...",
		WorkRequestRaised:  "Demande de Travail Créée",
		OfflineRequestAdd:  "Hors ligne: Demande Ajoutée à la File",
		IncompleteWR:       "Demande de Travail Incomplète",
		IncompleteWRMsg:    "Vous n'avez pas ajouté de commentaires ou de photos pour cette demande de travail. Voulez-vous continuer quand même?",
		GoBack:             "Retour",
		Proceed:            "Continuer",
		IncompleteDefects:  "Détails de Défaut Incomplets",
		IncompleteDefMsg:   "Certains défauts n'ont pas de commentaires ou de photos. Voulez-vous continuer quand même?",
	},
	"pt": {
		Online:             "Online",
		Offline:            "Offline",
		SearchPlaceholder:  "Pesquisar...",
		SortBy:             "Ordenar por:",
		SortByName:         "Nome",
		SortByID:           "ID",
		SortByBranch:       "Filial",
		ScanQR:             "Escanear Código QR",
		Bookmark:           "Marcador",
		RemoveBookmark:     "Remover dos Marcadores",
		BookmarkAdded:      "%s adicionado aos marcadores",
		BookmarkRemoved:    "%s removido dos marcadores",
		TaskHistory:        "Histórico de Tarefas",
		Back:               "Voltar",
		Cancel:             "Cancelar",
		Done:               "Concluído",
		PreStartCheckTitle: "Verificação pré-partida",
		ItemsCompleted:     "itens concluídos",
		Continue:           "Continuar",
		PleaseCompleteAll:  "Por favor complete todos os itens da lista",
		AddComments:        "Adicionar Comentários (Opcional)",
		Photos:             "Fotos",
		RaiseWorkRequest:   "Criar Solicitação de Trabalho",
		RaisingWorkRequest: "Criando Solicitação de Trabalho...",
		WorkRequestRaised:  "Solicitação de Trabalho Criada",
		OfflineRequestAdd:  "Offline: Solicitação Adicionada à Fila",
		IncompleteWR:       "Solicitação de Trabalho Incompleta",
		IncompleteWRMsg:    "Você não adicionou comentários ou fotos para esta solicitação de trabalho. Deseja prosseguir mesmo assim?",
		GoBack:             "Voltar",
		Proceed:            "Prosseguir",
		IncompleteDefects:  "Detalhes de Defeito Incompletos",
		IncompleteDefMsg:   "Alguns defeitos não têm comentários ou fotos. Deseja prosseguir mesmo assim?",
	},
	"id": {
		Online:             "Online",
		Offline:            "Offline",
		SearchPlaceholder:  "Cari...",
		SortBy:             "Urutkan berdasarkan:",
		SortByName:         "Nama",
		SortByID:           "ID",
		SortByBranch:       "Cabang",
		ScanQR:             "Pindai Kode QR",
		Bookmark:           "Bookmark",
		RemoveBookmark:     "Hapus dari Bookmark",
		BookmarkAdded:      "%s ditambahkan ke bookmark",
		BookmarkRemoved:    "%s dihapus dari bookmark",
		TaskHistory:        "Riwayat Tugas",
		Back:               "Kembali",
		Cancel:             "Batal",
		Done:               "Selesai",
		PreStartCheckTitle: "Pemeriksaan pra-mulai",
		ItemsCompleted:     "item selesai",
		Continue:           "Lanjutkan",
		PleaseCompleteAll:  "Silakan lengkapi semua item daftar periksa",
		AddComments:        "Tambahkan Komentar (Opsional)",
		Photos:             "Foto",
		RaiseWorkRequest:   "Buat Permintaan Kerja",
		RaisingWorkRequest: "Membuat Permintaan Kerja...",
		WorkRequestRaised:  "Permintaan Kerja Dibuat",
		OfflineRequestAdd:  "Offline: Permintaan Ditambahkan ke Antrian",
		IncompleteWR:       "Permintaan Kerja Tidak Lengkap",
		IncompleteWRMsg:    "Anda belum menambahkan komentar atau foto untuk permintaan kerja ini. Apakah Anda ingin melanjutkan?",
		GoBack:             "Kembali",
		Proceed:            "Lanjutkan",
		IncompleteDefects:  "Detail Cacat Tidak Lengkap",
		IncompleteDefMsg:   "Beberapa cacat tidak memiliki komentar atau foto. Apakah Anda ingin melanjutkan?",
	},
}

// itemTitles translates the default checklist titles. Configured titles
// without an entry are shown as written.
var itemTitles = map[string]map[string]string{
	"es": {
		"Fluid levels check":          "Niveles de fluidos",
		"Tire condition and pressure": "Condición y presión de neumáticos",
		"Lights and indicators":       "Luces e indicadores",
		"Brake system":                "Sistema de frenos",
	},
	"fr": {
		"Fluid levels check":          "Niveaux de fluides",
		"Tire condition and pressure": "État et pression des pneus",
		"Lights and indicators":       "Lumières et indicateurs",
		"Brake system":                "Système de freinage",
	},
	"pt": {
		"Fluid levels check":          "Níveis de fluidos",
		"Tire condition and pressure": "Condição e pressão dos pneus",
		"Lights and indicators":       "Luzes e indicadores",
		"Brake system":                "Sistema de freios",
	},
	"id": {
		"Fluid levels check":          "Tingkat cairan",
		"Tire condition and pressure": "Kondisi dan tekanan ban",
		"Lights and indicators":       "Lampu dan indikator",
		"Brake system":                "Sistem rem",
	},
}

// ItemTitle returns a checklist title in lang.
func ItemTitle(lang, title string) string {
	if t, ok := itemTitles[lang][title]; ok {
		return t
	}
	return title
}
