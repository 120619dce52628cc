package urls

// Links shown to users. All point at https://muurk.github.io/signup/

// SignIn is where existing account holders are sent from the form footer.
const SignIn = "https://muurk.github.io/signup/sign-in/"

// AccountRules documents the field rules enforced by each form variant.
const AccountRules = "https://muurk.github.io/signup/rules/"
