package i18n

// catalogs holds the per-language translation tables. English is the
// reference catalog: every key exists there, other languages fall back to it
// for anything they miss.
var catalogs = map[string]map[string]string{
	"en": {
		"appTitle":         "Cost Per Use",
		"emptyStateAction": "Add your first item to start tracking.",
		"netCost":          "Net Cost",
		"costPerUse":       "Cost / Use",
		"uses":             "uses",
		"resalePrefix":     "Resale",
		"categoryNone":     "Uncategorized",
		"btnUseLabel":      "Use",

		"currentCostPerUse": "Current Cost Per Use",
		"labelPrice":        "Price",
		"labelTotalUses":    "Total Uses",
		"labelNetCost":      "Net Cost",
		"labelCategory":     "Category",
		"labelAddedOn":      "Added On",
		"labelLastUsed":     "Last Used",
		"graphGrossCPU":     "Gross Cost/Use",
		"graphTrueCost":     "True Cost (after resale)",

		"sortNewest":       "Newest",
		"sortMostUsed":     "Most Used",
		"sortBestValue":    "Best Value",
		"sortWaste":        "Wasted Money",
		"sortHighestPrice": "Highest Price",

		"confirmTitle":           "Are you sure?",
		"confirmDefault":         "This action cannot be undone.",
		"confirmCancel":          "Cancel",
		"confirmDelete":          "Delete",
		"confirmDeletePermanent": "This will permanently delete the item and its usage history.",

		"settingsTitle":    "Settings",
		"settingsLanguage": "Language",
		"settingsCurrency": "Currency",

		"addNewItem": "Add New Item",
		"editItem":   "Edit Item",

		"csvName":        "Name",
		"csvCategory":    "Category",
		"csvBuyPrice":    "Buy Price",
		"csvResaleValue": "Resale Value",
		"csvNetCost":     "Net Cost",
		"csvUses":        "Uses",
		"csvCPU":         "Cost Per Use",
		"csvCreated":     "Created",

		"reportTitle":           "Cost Per Use Report",
		"reportNoItems":         "No items tracked yet.",
		"reportHeaderName":      "Name",
		"reportHeaderCategory":  "Category",
		"reportHeaderNetCost":   "Net Cost",
		"reportHeaderUses":      "Uses",
		"reportHeaderCPU":       "Cost/Use",
		"reportSummary":         "Summary",
		"reportTotalItems":      "Total Items",
		"reportTotalInvestment": "Total Investment",
		"reportTotalNetValue":   "Total Net Value",
		"reportGenerated":       "Generated on",

		"compactMillions": "M",
		"compactBillions": "B",
	},
	"de": {
		"appTitle":         "Kosten pro Nutzung",
		"emptyStateAction": "Füge deinen ersten Gegenstand hinzu.",
		"netCost":          "Nettokosten",
		"costPerUse":       "Kosten / Nutzung",
		"uses":             "Nutzungen",
		"resalePrefix":     "Wiederverkauf",
		"categoryNone":     "Ohne Kategorie",
		"btnUseLabel":      "Nutzung",

		"currentCostPerUse": "Aktuelle Kosten pro Nutzung",
		"labelPrice":        "Preis",
		"labelTotalUses":    "Nutzungen gesamt",
		"labelNetCost":      "Nettokosten",
		"labelCategory":     "Kategorie",
		"labelAddedOn":      "Hinzugefügt am",
		"labelLastUsed":     "Zuletzt genutzt",
		"graphGrossCPU":     "Bruttokosten/Nutzung",
		"graphTrueCost":     "Echte Kosten (nach Wiederverkauf)",

		"sortNewest":       "Neueste",
		"sortMostUsed":     "Meistgenutzt",
		"sortBestValue":    "Bester Wert",
		"sortWaste":        "Verschwendung",
		"sortHighestPrice": "Höchster Preis",

		"confirmTitle":           "Bist du sicher?",
		"confirmDefault":         "Diese Aktion kann nicht rückgängig gemacht werden.",
		"confirmCancel":          "Abbrechen",
		"confirmDelete":          "Löschen",
		"confirmDeletePermanent": "Der Gegenstand und sein Nutzungsverlauf werden dauerhaft gelöscht.",

		"settingsTitle":    "Einstellungen",
		"settingsLanguage": "Sprache",
		"settingsCurrency": "Währung",

		"addNewItem": "Neuen Gegenstand hinzufügen",
		"editItem":   "Gegenstand bearbeiten",

		"csvName":        "Name",
		"csvCategory":    "Kategorie",
		"csvBuyPrice":    "Kaufpreis",
		"csvResaleValue": "Wiederverkaufswert",
		"csvNetCost":     "Nettokosten",
		"csvUses":        "Nutzungen",
		"csvCPU":         "Kosten pro Nutzung",
		"csvCreated":     "Erstellt",

		"reportTitle":           "Kosten-pro-Nutzung-Bericht",
		"reportNoItems":         "Noch keine Gegenstände erfasst.",
		"reportHeaderName":      "Name",
		"reportHeaderCategory":  "Kategorie",
		"reportHeaderNetCost":   "Nettokosten",
		"reportHeaderUses":      "Nutzungen",
		"reportHeaderCPU":       "Kosten/Nutzung",
		"reportSummary":         "Zusammenfassung",
		"reportTotalItems":      "Gegenstände gesamt",
		"reportTotalInvestment": "Gesamtinvestition",
		"reportTotalNetValue":   "Gesamter Nettowert",
		"reportGenerated":       "Erstellt am",

		"compactMillions": " Mio.",
		"compactBillions": " Mrd.",
	},
	"fr": {
		"appTitle":         "Coût par utilisation",
		"emptyStateAction": "Ajoutez votre premier objet pour commencer.",
		"netCost":          "Coût net",
		"costPerUse":       "Coût / utilisation",
		"uses":             "utilisations",
		"resalePrefix":     "Revente",
		"categoryNone":     "Sans catégorie",
		"btnUseLabel":      "Utilisation",

		"currentCostPerUse": "Coût actuel par utilisation",
		"labelPrice":        "Prix",
		"labelTotalUses":    "Utilisations totales",
		"labelNetCost":      "Coût net",
		"labelCategory":     "Catégorie",
		"labelAddedOn":      "Ajouté le",
		"labelLastUsed":     "Dernière utilisation",
		"graphGrossCPU":     "Coût brut/utilisation",
		"graphTrueCost":     "Coût réel (après revente)",

		"sortNewest":       "Plus récents",
		"sortMostUsed":     "Plus utilisés",
		"sortBestValue":    "Meilleure valeur",
		"sortWaste":        "Gaspillage",
		"sortHighestPrice": "Prix le plus élevé",

		"confirmTitle":           "Êtes-vous sûr ?",
		"confirmDefault":         "Cette action est irréversible.",
		"confirmCancel":          "Annuler",
		"confirmDelete":          "Supprimer",
		"confirmDeletePermanent": "L'objet et son historique d'utilisation seront définitivement supprimés.",

		"settingsTitle":    "Paramètres",
		"settingsLanguage": "Langue",
		"settingsCurrency": "Devise",

		"addNewItem": "Ajouter un objet",
		"editItem":   "Modifier l'objet",

		"csvName":        "Nom",
		"csvCategory":    "Catégorie",
		"csvBuyPrice":    "Prix d'achat",
		"csvResaleValue": "Valeur de revente",
		"csvNetCost":     "Coût net",
		"csvUses":        "Utilisations",
		"csvCPU":         "Coût par utilisation",
		"csvCreated":     "Créé",

		"reportTitle":           "Rapport coût par utilisation",
		"reportNoItems":         "Aucun objet suivi pour le moment.",
		"reportHeaderName":      "Nom",
		"reportHeaderCategory":  "Catégorie",
		"reportHeaderNetCost":   "Coût net",
		"reportHeaderUses":      "Utilisations",
		"reportHeaderCPU":       "Coût/utilisation",
		"reportSummary":         "Résumé",
		"reportTotalItems":      "Objets au total",
		"reportTotalInvestment": "Investissement total",
		"reportTotalNetValue":   "Valeur nette totale",
		"reportGenerated":       "Généré le",

		"compactMillions": " M",
		"compactBillions": " Md",
	},
}
