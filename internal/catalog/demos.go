package catalog

import (
	"strconv"

	"github.com/vango-dev/daisy/pkg/daisy"
	"github.com/vango-dev/daisy/pkg/vdom"
)

// Demo builds one example node tree.
type Demo func() *vdom.VNode

// demoKey joins a component and demo name into a registry key.
func demoKey(component, demo string) string {
	return component + "/" + demo
}

// builtinDemos maps "component/demo" to the function rendering it. Every
// key must have a matching entry in catalog.yaml and vice versa.
var builtinDemos = map[string]Demo{
	"artboard/devices":       artboardDevices,
	"button/colors":          buttonColors,
	"button/sizes":           buttonSizes,
	"button/variants":        buttonVariants,
	"button/link":            buttonLink,
	"calendar/month":         calendarMonth,
	"carousel/autoplay":      carouselAutoplay,
	"chat/conversation":      chatConversation,
	"code/inline":            codeInline,
	"code/block":             codeBlock,
	"collapse/basic":         collapseBasic,
	"comments/thread":        commentsThread,
	"countdown/clock":        countdownClock,
	"divider/orientation":    dividerOrientation,
	"footer/full":            footerFull,
	"hero/centered":          heroCentered,
	"hero/background":        heroBackground,
	"indicator/badge":        indicatorBadge,
	"input-group/search":     inputGroupSearch,
	"join/buttons":           joinButtons,
	"kbd/shortcut":           kbdShortcut,
	"link/colors":            linkColors,
	"mask/shapes":            maskShapes,
	"menu/sidebar":           menuSidebar,
	"navbar/basic":           navbarBasic,
	"progress/values":        progressValues,
	"progress/indeterminate": progressIndeterminate,
	"radio/group":            radioGroup,
	"rating/stars":           ratingStars,
	"skeleton/card":          skeletonCard,
	"stack/cards":            stackCards,
	"stats/overview":         statsOverview,
	"steps/checkout":         stepsCheckout,
	"swap/toggle":            swapToggle,
	"table/zebra":            tableZebra,
	"tabs/basic":             tabsBasic,
	"theme/scoped":           themeScoped,
	"toast/types":            toastTypes,
	"toggle/colors":          toggleColors,
}

func row(children ...any) *vdom.VNode {
	return vdom.Div(vdom.Class("flex flex-wrap items-center gap-2"), children)
}

func artboardDevices() *vdom.VNode {
	return row(
		daisy.Artboard(daisy.ArtboardProps{Device: daisy.ArtboardDevicePhone, Shadow: daisy.ArtboardShadowMedium},
			daisy.ArtboardContent(daisy.ArtboardContentProps{}, "Phone")),
		daisy.Artboard(daisy.ArtboardProps{Device: daisy.ArtboardDeviceTablet, BorderRadius: daisy.ArtboardBorderRadiusLarge},
			daisy.ArtboardContent(daisy.ArtboardContentProps{}, "Tablet")),
	)
}

func buttonColors() *vdom.VNode {
	schemes := []daisy.ButtonUIColorScheme{
		daisy.ButtonUIColorSchemeNeutral,
		daisy.ButtonUIColorSchemePrimary,
		daisy.ButtonUIColorSchemeSecondary,
		daisy.ButtonUIColorSchemeAccent,
		daisy.ButtonUIColorSchemeInfo,
		daisy.ButtonUIColorSchemeSuccess,
		daisy.ButtonUIColorSchemeWarning,
		daisy.ButtonUIColorSchemeError,
		daisy.ButtonUIColorSchemeGhost,
		daisy.ButtonUIColorSchemeLink,
	}
	buttons := make([]*vdom.VNode, 0, len(schemes))
	for _, s := range schemes {
		buttons = append(buttons, daisy.ButtonUI(daisy.ButtonUIProps{ColorScheme: s}, s.String()))
	}
	return row(buttons)
}

func buttonSizes() *vdom.VNode {
	return row(
		daisy.ButtonUI(daisy.ButtonUIProps{Size: daisy.ButtonUISizeLarge}, "Large"),
		daisy.ButtonUI(daisy.ButtonUIProps{}, "Normal"),
		daisy.ButtonUI(daisy.ButtonUIProps{Size: daisy.ButtonUISizeSmall}, "Small"),
		daisy.ButtonUI(daisy.ButtonUIProps{Size: daisy.ButtonUISizeExtraSmall}, "Tiny"),
	)
}

func buttonVariants() *vdom.VNode {
	return row(
		daisy.ButtonUI(daisy.ButtonUIProps{ColorScheme: daisy.ButtonUIColorSchemePrimary, Variant: daisy.ButtonUIVariantOutline}, "Outline"),
		daisy.ButtonUI(daisy.ButtonUIProps{ColorScheme: daisy.ButtonUIColorSchemePrimary, Variant: daisy.ButtonUIVariantSoft}, "Soft"),
		daisy.ButtonUI(daisy.ButtonUIProps{Shape: daisy.ButtonUIShapeCircle}, "×"),
		daisy.ButtonUI(daisy.ButtonUIProps{Loading: true}, "Saving"),
		daisy.ButtonUI(daisy.ButtonUIProps{Disabled: true}, "Disabled"),
	)
}

func buttonLink() *vdom.VNode {
	return row(
		daisy.ButtonUI(daisy.ButtonUIProps{
			Href:        "https://daisyui.com",
			Target:      "_blank",
			ColorScheme: daisy.ButtonUIColorSchemeAccent,
			SuffixIcon:  `<svg width="12" height="12" viewBox="0 0 12 12"><path d="M2 10L10 2M4 2h6v6"/></svg>`,
		}, "DaisyUI"),
	)
}

func calendarMonth() *vdom.VNode {
	weekdays := []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}
	header := make([]*vdom.VNode, 0, len(weekdays))
	for _, d := range weekdays {
		header = append(header, daisy.CalendarWeekday(daisy.CalendarWeekdayProps{}, d))
	}

	days := make([]*vdom.VNode, 0, 30)
	for d := 1; d <= 30; d++ {
		days = append(days, daisy.CalendarDay(daisy.CalendarDayProps{
			Day:      d,
			Today:    d == 14,
			Selected: d == 21,
			Disabled: d > 28,
		}, strconv.Itoa(d)))
	}

	return daisy.Calendar(daisy.CalendarProps{Color: daisy.CalendarColorPrimary},
		daisy.CalendarHeader(daisy.CalendarHeaderProps{}, header),
		daisy.CalendarBody(daisy.CalendarBodyProps{}, days),
	)
}

func carouselAutoplay() *vdom.VNode {
	return daisy.Carousel(daisy.CarouselProps{AutoPlay: true, Infinite: true, PauseOnHover: true, Interval: 3000},
		daisy.CarouselItem(daisy.CarouselItemProps{Active: true}, "Slide one"),
		daisy.CarouselItem(daisy.CarouselItemProps{}, "Slide two"),
		daisy.CarouselItem(daisy.CarouselItemProps{}, "Slide three"),
	)
}

func chatConversation() *vdom.VNode {
	return vdom.Fragment(
		daisy.Chat(daisy.ChatProps{Class: "chat-start"},
			daisy.ChatHeader(daisy.ChatHeaderProps{}, "Obi-Wan"),
			daisy.ChatBubble(daisy.ChatBubbleProps{}, "You were the chosen one!"),
		),
		daisy.Chat(daisy.ChatProps{Class: "chat-end"},
			daisy.ChatBubble(daisy.ChatBubbleProps{Color: daisy.ChatBubbleColorPrimary}, "I hate you!"),
			daisy.ChatFooter(daisy.ChatFooterProps{}, "Seen"),
		),
	)
}

func codeInline() *vdom.VNode {
	return vdom.P("Run ", daisy.Code(daisy.CodeProps{}, "daisy build"), " to write the gallery.")
}

func codeBlock() *vdom.VNode {
	return daisy.Code(daisy.CodeProps{Type: daisy.CodeTypeBlock},
		vdom.Code("$ daisy serve --addr :4000"),
	)
}

func collapseBasic() *vdom.VNode {
	return daisy.Collapse(daisy.CollapseProps{Class: "collapse-arrow bg-base-200"},
		daisy.CollapseTitle(daisy.CollapseTitleProps{}, "Click to open"),
		daisy.CollapseContent(daisy.CollapseContentProps{}, "Hidden content"),
	)
}

func commentsThread() *vdom.VNode {
	return daisy.Comments(daisy.CommentsProps{Size: daisy.CommentsSizeMedium},
		daisy.Comment(daisy.CommentProps{Color: daisy.CommentsColorPrimary},
			daisy.CommentHeader(daisy.CommentHeaderProps{Author: "Ada", Avatar: "/img/ada.png", Timestamp: "2 hours ago"}),
			daisy.CommentBody(daisy.CommentBodyProps{}, "The new palette looks great."),
			daisy.CommentActions(daisy.CommentActionsProps{},
				daisy.ButtonUI(daisy.ButtonUIProps{ColorScheme: daisy.ButtonUIColorSchemeGhost, Size: daisy.ButtonUISizeExtraSmall}, "Reply"),
			),
		),
	)
}

func countdownClock() *vdom.VNode {
	return daisy.Countdown(daisy.CountdownProps{Class: "font-mono text-2xl"},
		daisy.CountdownValue(daisy.CountdownValueProps{Value: 10}), "h ",
		daisy.CountdownValue(daisy.CountdownValueProps{Value: 24}), "m ",
		daisy.CountdownValue(daisy.CountdownValueProps{Value: 59}), "s",
	)
}

func dividerOrientation() *vdom.VNode {
	return vdom.Fragment(
		daisy.Divider(daisy.DividerProps{}, "OR"),
		vdom.Div(vdom.Class("flex h-16"),
			vdom.Div("Left"),
			daisy.Divider(daisy.DividerProps{Orientation: daisy.DividerOrientationHorizontal}, "|"),
			vdom.Div("Right"),
		),
	)
}

func footerFull() *vdom.VNode {
	return daisy.Footer(daisy.FooterProps{
		Color:       daisy.FooterColorNeutral,
		Title:       "Daisy",
		Description: "DaisyUI components for Go.",
		Copyright:   "© {year} Daisy contributors",
		Year:        2025,
	},
		daisy.FooterSection(daisy.FooterSectionProps{Title: "Project"},
			daisy.FooterLink(daisy.FooterLinkProps{Href: "/"}, "Gallery"),
			daisy.FooterLink(daisy.FooterLinkProps{Href: "https://daisyui.com", External: true}, "DaisyUI"),
		),
	)
}

func heroCentered() *vdom.VNode {
	return daisy.Hero(daisy.HeroProps{Size: daisy.HeroSizeMedium, Class: "bg-base-200"},
		daisy.HeroContent(daisy.HeroContentProps{Align: daisy.HeroAlignCenter},
			daisy.HeroTitle(daisy.HeroTitleProps{}, "Hello there"),
			daisy.HeroSubtitle(daisy.HeroSubtitleProps{}, "Components rendered on the server."),
			daisy.HeroActions(daisy.HeroActionsProps{},
				daisy.ButtonUI(daisy.ButtonUIProps{ColorScheme: daisy.ButtonUIColorSchemePrimary}, "Get started"),
			),
		),
	)
}

func heroBackground() *vdom.VNode {
	return daisy.Hero(daisy.HeroProps{
		BackgroundImage: "/img/hero.jpg",
		Overlay:         true,
		OverlayOpacity:  daisy.Float64(0.6),
	},
		daisy.HeroContent(daisy.HeroContentProps{Align: daisy.HeroAlignLeft},
			daisy.HeroTitle(daisy.HeroTitleProps{Level: daisy.HeroTitleLevelH2}, "Over an image"),
		),
	)
}

func indicatorBadge() *vdom.VNode {
	return daisy.Indicator(daisy.IndicatorProps{},
		daisy.IndicatorItem(daisy.IndicatorItemProps{Class: "badge badge-secondary"}, "new"),
		vdom.Div(vdom.Class("grid h-32 w-32 place-items-center bg-base-300"), "content"),
	)
}

func inputGroupSearch() *vdom.VNode {
	return daisy.InputGroup(daisy.InputGroupProps{Size: daisy.InputGroupSizeMedium},
		daisy.InputGroupIcon(daisy.InputGroupIconProps{}, "🔍"),
		daisy.InputGroupInput(daisy.InputGroupInputProps{Type: "search", Name: "q", Placeholder: "Search…"}),
		daisy.InputGroupSelect(daisy.InputGroupSelectProps{Name: "scope"},
			daisy.InputGroupOption(daisy.InputGroupOptionProps{Value: "all", Selected: true}, "All"),
			daisy.InputGroupOption(daisy.InputGroupOptionProps{Value: "docs"}, "Docs"),
		),
		daisy.InputGroupButton(daisy.InputGroupButtonProps{Type: "submit"}, "Go"),
	)
}

func joinButtons() *vdom.VNode {
	return daisy.Join(daisy.JoinProps{},
		daisy.JoinItem(daisy.JoinItemProps{Class: "btn"}, "«"),
		daisy.JoinItem(daisy.JoinItemProps{Class: "btn"}, "Page 2"),
		daisy.JoinItem(daisy.JoinItemProps{Class: "btn"}, "»"),
	)
}

func kbdShortcut() *vdom.VNode {
	return row(
		daisy.Kbd(daisy.KbdProps{}, "ctrl"), "+",
		daisy.Kbd(daisy.KbdProps{}, "shift"), "+",
		daisy.Kbd(daisy.KbdProps{}, "del"),
	)
}

func linkColors() *vdom.VNode {
	return row(
		daisy.Link(daisy.LinkProps{Href: "#"}, "Neutral"),
		daisy.Link(daisy.LinkProps{Href: "#", ColorScheme: daisy.LinkColorSchemePrimary}, "Primary"),
		daisy.Link(daisy.LinkProps{Href: "https://github.com", Target: "_blank", External: true, ColorScheme: daisy.LinkColorSchemeAccent}, "External"),
	)
}

func maskShapes() *vdom.VNode {
	variants := []daisy.MaskVariant{
		daisy.MaskVariantCircle,
		daisy.MaskVariantSquircle,
		daisy.MaskVariantHexagon,
		daisy.MaskVariantTriangle,
		daisy.MaskVariantDiamond,
	}
	masks := make([]*vdom.VNode, 0, len(variants))
	for _, v := range variants {
		masks = append(masks, daisy.Mask(daisy.MaskProps{Variant: v, Width: "4rem", Height: "4rem"},
			vdom.Img(vdom.Src("/img/avatar.png"), vdom.Alt(v.String()))))
	}
	return row(masks)
}

func menuSidebar() *vdom.VNode {
	return daisy.Menu(daisy.MenuProps{Class: "w-56 bg-base-200"},
		daisy.MenuTitle(daisy.MenuTitleProps{}, "Components"),
		daisy.MenuItem(daisy.MenuItemProps{Href: "/components/button", Active: true}, "Button"),
		daisy.MenuItem(daisy.MenuItemProps{Href: "/components/hero"}, "Hero"),
		daisy.MenuItem(daisy.MenuItemProps{Disabled: true}, "Coming soon"),
	)
}

func navbarBasic() *vdom.VNode {
	return daisy.Navbar(daisy.NavbarProps{Class: "bg-base-100 shadow"},
		daisy.NavbarStart(daisy.NavbarStartProps{},
			daisy.Link(daisy.LinkProps{Href: "/"}, "daisy"),
		),
		daisy.NavbarCenter(daisy.NavbarCenterProps{}, "Gallery"),
		daisy.NavbarEnd(daisy.NavbarEndProps{},
			daisy.ButtonUI(daisy.ButtonUIProps{ColorScheme: daisy.ButtonUIColorSchemeGhost}, "Login"),
		),
	)
}

func progressValues() *vdom.VNode {
	return vdom.Div(vdom.Class("flex flex-col gap-2"),
		daisy.Progress(daisy.ProgressProps{Value: 25}),
		daisy.Progress(daisy.ProgressProps{Value: 50, ColorScheme: daisy.ProgressColorSchemeSuccess}),
		daisy.Progress(daisy.ProgressProps{Value: 3, Max: daisy.Float64(4), ColorScheme: daisy.ProgressColorSchemeWarning}),
	)
}

func progressIndeterminate() *vdom.VNode {
	return daisy.Progress(daisy.ProgressProps{Indeterminate: true, ColorScheme: daisy.ProgressColorSchemeInfo})
}

func radioGroup() *vdom.VNode {
	return row(
		daisy.Radio(daisy.RadioProps{ID: "size-s", Name: "size", Value: "s"}, "Small"),
		daisy.Radio(daisy.RadioProps{ID: "size-m", Name: "size", Value: "m", Checked: true}, "Medium"),
		daisy.Radio(daisy.RadioProps{ID: "size-l", Name: "size", Value: "l", Disabled: true}, "Large"),
	)
}

func ratingStars() *vdom.VNode {
	return row(
		daisy.Rating(daisy.RatingProps{ID: "demo", Value: 3}),
		daisy.Rating(daisy.RatingProps{ID: "fixed", Value: 4, ReadOnly: true, ColorScheme: daisy.RatingColorSchemeWarning}),
	)
}

func skeletonCard() *vdom.VNode {
	return vdom.Div(vdom.Class("flex w-52 flex-col gap-4"),
		daisy.Skeleton(daisy.SkeletonProps{Variant: daisy.SkeletonVariantImage}),
		daisy.Skeleton(daisy.SkeletonProps{}),
		daisy.Skeleton(daisy.SkeletonProps{Variant: daisy.SkeletonVariantAvatar}),
	)
}

func stackCards() *vdom.VNode {
	return daisy.Stack(daisy.StackProps{},
		vdom.Div(vdom.Class("card bg-primary text-primary-content"), "A"),
		vdom.Div(vdom.Class("card bg-accent text-accent-content"), "B"),
		vdom.Div(vdom.Class("card bg-secondary text-secondary-content"), "C"),
	)
}

func statsOverview() *vdom.VNode {
	return daisy.Stats(daisy.StatsProps{Class: "shadow"},
		daisy.StatsItem(daisy.StatsItemProps{},
			daisy.StatsTitle(daisy.StatsTitleProps{}, "Downloads"),
			daisy.StatsValue(daisy.StatsValueProps{}, "31K"),
			daisy.StatsDescription(daisy.StatsDescriptionProps{}, "Jan 1st - Feb 1st"),
		),
		daisy.StatsItem(daisy.StatsItemProps{ColorScheme: daisy.StatsColorSchemeSuccess},
			daisy.StatsTitle(daisy.StatsTitleProps{}, "New users"),
			daisy.StatsValue(daisy.StatsValueProps{}, "4,200"),
		),
	)
}

func stepsCheckout() *vdom.VNode {
	return daisy.Steps(daisy.StepsProps{Orientation: daisy.StepsOrientationHorizontal},
		daisy.Step(daisy.StepProps{Value: 0}, "Register"),
		daisy.Step(daisy.StepProps{Value: 1}, "Choose plan"),
		daisy.Step(daisy.StepProps{Value: 2}, "Purchase"),
	)
}

func swapToggle() *vdom.VNode {
	return daisy.Swap(daisy.SwapProps{Animation: daisy.SwapAnimationRotate},
		daisy.SwapItem(daisy.SwapItemProps{Class: "swap-on"}, "ON"),
		daisy.SwapItem(daisy.SwapItemProps{Class: "swap-off"}, "OFF"),
	)
}

func tableZebra() *vdom.VNode {
	people := [][2]string{{"Cy Ganderton", "Quality Control"}, {"Hart Hagerty", "Desktop Support"}, {"Brice Swyre", "Tax Accountant"}}
	rows := make([]*vdom.VNode, 0, len(people))
	for i, p := range people {
		rows = append(rows, vdom.Tr(vdom.Th(strconv.Itoa(i+1)), vdom.Td(p[0]), vdom.Td(p[1])))
	}
	return daisy.Table(daisy.TableProps{Zebra: true, RowHover: true},
		vdom.Thead(vdom.Tr(vdom.Th(), vdom.Th("Name"), vdom.Th("Job"))),
		vdom.Tbody(rows),
	)
}

func tabsBasic() *vdom.VNode {
	return vdom.Fragment(
		daisy.Tabs(daisy.TabsProps{Orientation: daisy.TabsOrientationHorizontal, Class: "tabs-bordered"},
			daisy.Tab(daisy.TabProps{Value: "one", Class: "tab-active"}, "Tab 1"),
			daisy.Tab(daisy.TabProps{Value: "two"}, "Tab 2"),
			daisy.Tab(daisy.TabProps{Value: "three", Disabled: true}, "Tab 3"),
		),
		daisy.TabPanel(daisy.TabPanelProps{Value: "one"}, "First panel"),
	)
}

func themeScoped() *vdom.VNode {
	return row(
		daisy.Theme(daisy.ThemeProps{Name: daisy.ThemeNameDark},
			daisy.ButtonUI(daisy.ButtonUIProps{ColorScheme: daisy.ButtonUIColorSchemePrimary}, "Dark"),
		),
		daisy.Theme(daisy.ThemeProps{Name: daisy.ThemeNameCupcake},
			daisy.ButtonUI(daisy.ButtonUIProps{ColorScheme: daisy.ButtonUIColorSchemePrimary}, "Cupcake"),
		),
	)
}

func toastTypes() *vdom.VNode {
	return vdom.Div(vdom.Class("flex flex-col gap-2"),
		daisy.Toast(daisy.ToastProps{}, "Saved."),
		daisy.Toast(daisy.ToastProps{Type: daisy.ToastTypeInfo}, "New version available."),
		daisy.Toast(daisy.ToastProps{Type: daisy.ToastTypeWarning}, "Disk almost full."),
		daisy.Toast(daisy.ToastProps{Type: daisy.ToastTypeError}, "Upload failed."),
	)
}

func toggleColors() *vdom.VNode {
	return row(
		daisy.Toggle(daisy.ToggleProps{Name: "a", Checked: true}),
		daisy.Toggle(daisy.ToggleProps{Name: "b", Checked: true, ColorScheme: daisy.ToggleColorSchemePrimary}),
		daisy.Toggle(daisy.ToggleProps{Name: "c", ColorScheme: daisy.ToggleColorSchemeSuccess, Size: daisy.ToggleSizeLarge}),
		daisy.Toggle(daisy.ToggleProps{Name: "d", Disabled: true}),
	)
}
